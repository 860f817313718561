package models

import "time"

// AuditEntryModel is the database persistence model for the append-only
// action log.
type AuditEntryModel struct {
	ID        uint   `gorm:"primarykey"`
	ActorID   uint   `gorm:"not null;index"`
	ActorName string `gorm:"size:50"`
	Action    string `gorm:"size:50;not null"`
	Entity    string `gorm:"size:50;not null"`
	TargetID  *uint
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
