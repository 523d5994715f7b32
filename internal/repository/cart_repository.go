package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
)

type CartRepository interface {
	// 既存行は数量を置き換えてupdated_atを更新、無ければ新規行
	Upsert(ctx context.Context, userID string, itemID string, qty int64, now time.Time) error

	// 冪等。行が無くてもエラーにしない
	Remove(ctx context.Context, userID string, itemID string) error

	// updated_at昇順（表示・チェックアウト順）
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)

	ListByUserAndItems(ctx context.Context, userID string, itemIDs []string) ([]model.CartItem, error)

	// 注文に取り込んだ行だけを消す。注文作成と同一トランザクションで呼ぶ
	DeleteByUserAndItems(ctx context.Context, userID string, itemIDs []string) error
}
