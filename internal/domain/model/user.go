package model

import "time"

type User struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username        string    `gorm:"type:varchar(255);not null" json:"username"`
	HashedPassword  string    `gorm:"type:varchar(255);not null" json:"-"`
	Address         *string   `gorm:"type:varchar(255)" json:"address"`
	CellphoneNumber *string   `gorm:"type:varchar(32)" json:"cellphone_number"`
	RoleID          int       `gorm:"not null;default:0" json:"role_id"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
