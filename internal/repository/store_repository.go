package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type StoreRepository interface {
	FindByID(ctx context.Context, storeID string) (model.Store, error)
	Create(ctx context.Context, store model.Store) error
	Delete(ctx context.Context, storeID string) error
	Exists(ctx context.Context, storeID string) (bool, error)
}
