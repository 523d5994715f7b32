package model

import "time"

// 価格は最小通貨単位の整数。Inventoryは常に0以上（予約はreserveのみが減らす）。
type Item struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	StoreID     string    `gorm:"type:uuid;not null;index" json:"store_id"`
	Inventory   int64     `gorm:"not null" json:"inventory"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
