package models

import "time"

// TicketModel is the database persistence model for support tickets.
// TimeSpent is in seconds. HandlerHelperID is a weak reference; the
// helper delete cascade removes dependent rows explicitly.
type TicketModel struct {
	ID                uint   `gorm:"primarykey"`
	SubmitterUsername string `gorm:"size:100;not null;index"`
	HandlerHelperID   *uint  `gorm:"index"`
	TimeSpent         uint   `gorm:"not null;default:0"`
	ResolutionRating  int    `gorm:"not null;default:0"`
	CreatedAt         time.Time
	ClosedAt          *time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}
