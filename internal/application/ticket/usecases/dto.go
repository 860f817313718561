package usecases

import (
	"time"

	"helperdesk/internal/domain/ticket"
)

// TicketDTO is the JSON shape of a logged ticket. TimeSpent is in
// seconds; HandlerName is empty when no handler is recorded.
type TicketDTO struct {
	ID                uint       `json:"id"`
	SubmitterUsername string     `json:"submitter_username"`
	HandlerHelperID   *uint      `json:"handler_helper_id,omitempty"`
	HandlerName       string     `json:"handler_name,omitempty"`
	TimeSpent         uint       `json:"time_spent"`
	ResolutionRating  int        `json:"resolution_rating"`
	CreatedAt         time.Time  `json:"created_at"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
}

func ticketToDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:                t.ID(),
		SubmitterUsername: t.SubmitterUsername(),
		HandlerHelperID:   t.HandlerHelperID(),
		HandlerName:       t.HandlerName(),
		TimeSpent:         t.TimeSpent(),
		ResolutionRating:  t.ResolutionRating(),
		CreatedAt:         t.CreatedAt(),
		ClosedAt:          t.ClosedAt(),
	}
}
