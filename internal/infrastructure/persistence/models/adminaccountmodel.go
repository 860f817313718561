package models

import "time"

// AdminAccountModel is the database persistence model for console
// sign-in accounts.
type AdminAccountModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Rank         string `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AdminAccountModel) TableName() string {
	return "admin_accounts"
}
