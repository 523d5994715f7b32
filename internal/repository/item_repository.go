package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ItemRepository interface {
	FindByID(ctx context.Context, itemID string) (model.Item, error)
	// 注文グルーピング用。見つからないIDは結果に含めない
	FindByIDs(ctx context.Context, itemIDs []string) ([]model.Item, error)
	Create(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, itemID string) error
	ListByStoreID(ctx context.Context, storeID string) ([]model.Item, error)

	// カート/注文から参照されているか（カタログ側の削除ガード）
	HasReferences(ctx context.Context, itemID string) (bool, error)
}
