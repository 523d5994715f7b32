package model

import "time"

// カートの明細。(user_id, item_id) で1行、同じ商品の再追加は数量を上書きする。
type CartItem struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	ItemID    string    `gorm:"type:uuid;primaryKey" json:"item_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
