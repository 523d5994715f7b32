package model

type ItemPhoto struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID string `gorm:"type:uuid;not null;index" json:"item_id"`
}
