package helper

import (
	"fmt"
	"time"

	"helperdesk/internal/shared/authorization"
)

// Helper is a member of the support-helper roster.
type Helper struct {
	id           uint
	name         string
	rank         authorization.Rank
	warningCount uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewHelper(name string, rank authorization.Rank) (*Helper, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if !rank.IsValid() {
		return nil, fmt.Errorf("invalid rank: %s", rank)
	}

	now := time.Now()
	return &Helper{
		name:      name,
		rank:      rank,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHelper(
	id uint,
	name string,
	rank authorization.Rank,
	warningCount uint,
	createdAt, updatedAt time.Time,
) (*Helper, error) {
	if id == 0 {
		return nil, fmt.Errorf("helper ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !rank.IsValid() {
		return nil, fmt.Errorf("invalid rank: %s", rank)
	}

	return &Helper{
		id:           id,
		name:         name,
		rank:         rank,
		warningCount: warningCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first save.
func (h *Helper) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("helper ID already set")
	}
	if id == 0 {
		return fmt.Errorf("helper ID cannot be zero")
	}
	h.id = id
	return nil
}

func (h *Helper) ID() uint                     { return h.id }
func (h *Helper) Name() string                 { return h.name }
func (h *Helper) Rank() authorization.Rank     { return h.rank }
func (h *Helper) WarningCount() uint           { return h.warningCount }
func (h *Helper) CreatedAt() time.Time         { return h.createdAt }
func (h *Helper) UpdatedAt() time.Time         { return h.updatedAt }

// Rename updates the helper's display name.
func (h *Helper) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	h.name = name
	h.updatedAt = time.Now()
	return nil
}

// ChangeRank moves the helper to a different rank.
func (h *Helper) ChangeRank(rank authorization.Rank) error {
	if !rank.IsValid() {
		return fmt.Errorf("invalid rank: %s", rank)
	}
	h.rank = rank
	h.updatedAt = time.Now()
	return nil
}

// AdjustWarnings applies a signed delta to the warning counter. The
// counter never goes below zero; a decrement larger than the current
// value clamps to zero instead of failing.
func (h *Helper) AdjustWarnings(delta int) uint {
	if delta < 0 && uint(-delta) >= h.warningCount {
		h.warningCount = 0
	} else {
		h.warningCount = uint(int(h.warningCount) + delta)
	}
	h.updatedAt = time.Now()
	return h.warningCount
}
