package admin

import (
	"fmt"
	"time"
)

// Session is a server-side login session. The client holds an opaque
// token; only its SHA-256 hash is stored here.
type Session struct {
	id             uint
	adminID        uint
	tokenHash      string
	ipAddress      string
	userAgent      string
	expiresAt      time.Time
	lastActivityAt time.Time
	createdAt      time.Time
}

func NewSession(adminID uint, tokenHash, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}
	if len(tokenHash) == 0 {
		return nil, fmt.Errorf("token hash is required")
	}
	if !expiresAt.After(time.Now()) {
		return nil, fmt.Errorf("expiry must be in the future")
	}

	now := time.Now()
	return &Session{
		adminID:        adminID,
		tokenHash:      tokenHash,
		ipAddress:      ipAddress,
		userAgent:      userAgent,
		expiresAt:      expiresAt,
		lastActivityAt: now,
		createdAt:      now,
	}, nil
}

func ReconstructSession(
	id uint,
	adminID uint,
	tokenHash, ipAddress, userAgent string,
	expiresAt, lastActivityAt, createdAt time.Time,
) (*Session, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}

	return &Session{
		id:             id,
		adminID:        adminID,
		tokenHash:      tokenHash,
		ipAddress:      ipAddress,
		userAgent:      userAgent,
		expiresAt:      expiresAt,
		lastActivityAt: lastActivityAt,
		createdAt:      createdAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first save.
func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("session ID already set")
	}
	if id == 0 {
		return fmt.Errorf("session ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Session) ID() uint                  { return s.id }
func (s *Session) AdminID() uint             { return s.adminID }
func (s *Session) TokenHash() string         { return s.tokenHash }
func (s *Session) IPAddress() string         { return s.ipAddress }
func (s *Session) UserAgent() string         { return s.userAgent }
func (s *Session) ExpiresAt() time.Time      { return s.expiresAt }
func (s *Session) LastActivityAt() time.Time { return s.lastActivityAt }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.expiresAt)
}

// Touch records activity on the session.
func (s *Session) Touch() {
	s.lastActivityAt = time.Now()
}
