package models

import "time"

// HelperModel is the database persistence model for roster helpers.
type HelperModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:100;not null"`
	Rank         string `gorm:"size:20;not null;index"`
	WarningCount uint   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (HelperModel) TableName() string {
	return "helpers"
}
