package repository

import (
	"context"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) FindByID(ctx context.Context, itemID string) (model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if isNotFound(err) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *ItemGormRepository) FindByIDs(ctx context.Context, itemIDs []string) ([]model.Item, error) {
	if len(itemIDs) == 0 {
		return []model.Item{}, nil
	}
	var items []model.Item
	err := r.db.WithContext(ctx).Where("id IN ?", itemIDs).Find(&items).Error
	if err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) error {
	return r.db.WithContext(ctx).Create(&item).Error
}

func (r *ItemGormRepository) Delete(ctx context.Context, itemID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ItemGormRepository) ListByStoreID(ctx context.Context, storeID string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

// カートか注文明細から参照されている商品は消させない
func (r *ItemGormRepository) HasReferences(ctx context.Context, itemID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("item_id = ?", itemID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("item_id = ?", itemID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
