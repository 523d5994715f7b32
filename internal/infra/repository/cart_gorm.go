package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 同一(user_id, item_id)は数量を置き換える（加算ではない）
func (r *CartGormRepository) Upsert(ctx context.Context, userID string, itemID string, qty int64, now time.Time) error {
	entry := model.CartItem{
		UserID:    userID,
		ItemID:    itemID,
		Quantity:  qty,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&entry).Error
}

// 冪等。無ければ何もしない
func (r *CartGormRepository) Remove(ctx context.Context, userID string, itemID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.CartItem{}).Error
}

func (r *CartGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	var entries []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at asc").
		Find(&entries).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return entries, nil
}

func (r *CartGormRepository) ListByUserAndItems(ctx context.Context, userID string, itemIDs []string) ([]model.CartItem, error) {
	if len(itemIDs) == 0 {
		return []model.CartItem{}, nil
	}
	var entries []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id IN ?", userID, itemIDs).
		Order("updated_at asc").
		Find(&entries).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return entries, nil
}

func (r *CartGormRepository) DeleteByUserAndItems(ctx context.Context, userID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id IN ?", userID, itemIDs).
		Delete(&model.CartItem{}).Error
}
