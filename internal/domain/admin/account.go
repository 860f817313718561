package admin

import (
	"fmt"
	"time"

	"helperdesk/internal/shared/authorization"
)

// Account is a console sign-in identity. The password is held only as
// a bcrypt hash.
type Account struct {
	id           uint
	username     string
	passwordHash string
	rank         authorization.Rank
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAccount(username, passwordHash string, rank authorization.Rank) (*Account, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !rank.IsValid() {
		return nil, fmt.Errorf("invalid rank: %s", rank)
	}

	now := time.Now()
	return &Account{
		username:     username,
		passwordHash: passwordHash,
		rank:         rank,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAccount(
	id uint,
	username, passwordHash string,
	rank authorization.Rank,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !rank.IsValid() {
		return nil, fmt.Errorf("invalid rank: %s", rank)
	}

	return &Account{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		rank:         rank,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first save.
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) ID() uint                 { return a.id }
func (a *Account) Username() string         { return a.username }
func (a *Account) PasswordHash() string     { return a.passwordHash }
func (a *Account) Rank() authorization.Rank { return a.rank }
func (a *Account) CreatedAt() time.Time     { return a.createdAt }
func (a *Account) UpdatedAt() time.Time     { return a.updatedAt }

// ChangePasswordHash replaces the stored credential hash.
func (a *Account) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.updatedAt = time.Now()
	return nil
}

// ChangeRank moves the account to a different rank.
func (a *Account) ChangeRank(rank authorization.Rank) error {
	if !rank.IsValid() {
		return fmt.Errorf("invalid rank: %s", rank)
	}
	a.rank = rank
	a.updatedAt = time.Now()
	return nil
}
