package models

import "time"

// SessionModel is the database persistence model for login sessions.
// Only the SHA-256 hash of the client token is stored.
type SessionModel struct {
	ID             uint   `gorm:"primarykey"`
	AdminID        uint   `gorm:"not null;index"`
	TokenHash      string `gorm:"size:64;not null;uniqueIndex"`
	IPAddress      string `gorm:"size:45"`
	UserAgent      string `gorm:"size:512"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	LastActivityAt time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
