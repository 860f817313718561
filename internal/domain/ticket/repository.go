package ticket

import "context"

// Filter narrows and orders a ticket listing. Free-text search matches
// the submitter username and the handler's display name only.
type Filter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// DeleteByHandler removes every ticket handled by the given helper.
	// Used by the helper delete cascade.
	DeleteByHandler(ctx context.Context, helperID uint) error
}
