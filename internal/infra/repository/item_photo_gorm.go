package repository

import (
	"context"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type ItemPhotoGormRepository struct {
	db *gorm.DB
}

func NewItemPhotoGormRepository(db *gorm.DB) *ItemPhotoGormRepository {
	return &ItemPhotoGormRepository{db: db}
}

func (r *ItemPhotoGormRepository) Create(ctx context.Context, photo model.ItemPhoto) error {
	return r.db.WithContext(ctx).Create(&photo).Error
}

func (r *ItemPhotoGormRepository) ListByItemID(ctx context.Context, itemID string) ([]model.ItemPhoto, error) {
	var photos []model.ItemPhoto
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id asc").
		Find(&photos).Error
	if err != nil {
		return []model.ItemPhoto{}, err
	}
	return photos, nil
}

func (r *ItemPhotoGormRepository) Delete(ctx context.Context, photoID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", photoID).Delete(&model.ItemPhoto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
