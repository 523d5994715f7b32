package model

// 注文明細。数量は注文確定時点のカートの値を凍結したもので、以後変わらない。
// 親注文の削除でのみ消える（cascade）。
type OrderItem struct {
	OrderID  string `gorm:"type:varchar(32);primaryKey" json:"order_id"`
	ItemID   string `gorm:"type:uuid;primaryKey" json:"item_id"`
	Quantity int64  `gorm:"not null" json:"quantity"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}
