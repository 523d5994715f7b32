package repository

import (
	"context"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type StoreGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

func (r *StoreGormRepository) FindByID(ctx context.Context, storeID string) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("id = ?", storeID).First(&s).Error
	if isNotFound(err) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

func (r *StoreGormRepository) Create(ctx context.Context, store model.Store) error {
	return r.db.WithContext(ctx).Create(&store).Error
}

func (r *StoreGormRepository) Delete(ctx context.Context, storeID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", storeID).Delete(&model.Store{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StoreGormRepository) Exists(ctx context.Context, storeID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("id = ?", storeID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
