package model

import "time"

// 注文ヘッダ。作成後は不変で、ライフサイクルのタイムスタンプだけが進む。
// 各タイムスタンプは一度セットしたら二度と書き換えない。
// create_at <= paid_at <= shipped_at <= received_at <= reviewed_at
// is_cancelled は shipped_at が無いときだけ true になれる。
type Order struct {
	ID          string     `gorm:"type:varchar(32);primaryKey" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	StoreID     string     `gorm:"type:uuid;not null;index" json:"store_id"`
	ShippingFee int64      `gorm:"not null" json:"shipping_fee"`
	CreateAt    time.Time  `gorm:"not null" json:"create_at"`
	PaidAt      *time.Time `json:"paid_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	ReceivedAt  *time.Time `json:"received_at"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	IsCancelled bool       `gorm:"not null;default:false" json:"is_cancelled"`
}
