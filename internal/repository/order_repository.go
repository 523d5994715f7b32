package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) error
	Delete(ctx context.Context, orderID string) error

	// 遷移は条件付きUPDATE一発で行う。条件を満たす行が無ければfalse。
	// 一度セットされたタイムスタンプをこの経路で上書きすることはできない。
	SetPaidAt(ctx context.Context, orderID string, at time.Time) (bool, error)
	SetShippedAt(ctx context.Context, orderID string, at time.Time) (bool, error)
	SetReceivedAt(ctx context.Context, orderID string, at time.Time) (bool, error)
	SetReviewedAt(ctx context.Context, orderID string, at time.Time) (bool, error)
	MarkCancelled(ctx context.Context, orderID string) (bool, error)
}
