package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type ItemPhotoRepository interface {
	Create(ctx context.Context, photo model.ItemPhoto) error
	ListByItemID(ctx context.Context, itemID string) ([]model.ItemPhoto, error)
	Delete(ctx context.Context, photoID string) error
}
