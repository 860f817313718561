package ticket

import (
	"fmt"
	"time"
)

// Ticket is one handled support request. timeSpent is measured in
// seconds; resolutionRating is the submitter's 1..5 score.
type Ticket struct {
	id                uint
	submitterUsername string
	handlerHelperID   *uint
	handlerName       string
	timeSpent         uint
	resolutionRating  int
	createdAt         time.Time
	closedAt          *time.Time
}

func NewTicket(
	submitterUsername string,
	handlerHelperID *uint,
	timeSpent uint,
	resolutionRating int,
	closedAt *time.Time,
) (*Ticket, error) {
	if len(submitterUsername) == 0 {
		return nil, fmt.Errorf("submitter username is required")
	}
	if len(submitterUsername) > 100 {
		return nil, fmt.Errorf("submitter username exceeds maximum length of 100 characters")
	}
	if resolutionRating < 1 || resolutionRating > 5 {
		return nil, fmt.Errorf("resolution rating must be between 1 and 5")
	}
	if handlerHelperID != nil && *handlerHelperID == 0 {
		return nil, fmt.Errorf("handler helper ID cannot be zero")
	}

	return &Ticket{
		submitterUsername: submitterUsername,
		handlerHelperID:   handlerHelperID,
		timeSpent:         timeSpent,
		resolutionRating:  resolutionRating,
		createdAt:         time.Now(),
		closedAt:          closedAt,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage. handlerName is the
// joined helper display name and may be empty when the handler is
// unset or has been removed.
func ReconstructTicket(
	id uint,
	submitterUsername string,
	handlerHelperID *uint,
	handlerName string,
	timeSpent uint,
	resolutionRating int,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(submitterUsername) == 0 {
		return nil, fmt.Errorf("submitter username is required")
	}

	return &Ticket{
		id:                id,
		submitterUsername: submitterUsername,
		handlerHelperID:   handlerHelperID,
		handlerName:       handlerName,
		timeSpent:         timeSpent,
		resolutionRating:  resolutionRating,
		createdAt:         createdAt,
		closedAt:          closedAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first save.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) SubmitterUsername() string { return t.submitterUsername }
func (t *Ticket) HandlerHelperID() *uint    { return t.handlerHelperID }
func (t *Ticket) HandlerName() string       { return t.handlerName }
func (t *Ticket) TimeSpent() uint           { return t.timeSpent }
func (t *Ticket) ResolutionRating() int     { return t.resolutionRating }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) ClosedAt() *time.Time      { return t.closedAt }
