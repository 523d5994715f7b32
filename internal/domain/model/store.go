package model

import "time"

type Store struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID        string    `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	CountyID        int       `gorm:"not null" json:"county_id"`
	DistrictID      int       `gorm:"not null" json:"district_id"`
	DetailAddress   string    `gorm:"type:varchar(255);not null" json:"detail_address"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	CellphoneNumber string    `gorm:"type:varchar(32);not null" json:"cellphone_number"`
	TelephoneNumber string    `gorm:"type:varchar(32);not null" json:"telephone_number"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
