package helper

import (
	"context"

	"helperdesk/internal/shared/authorization"
)

// Filter narrows and orders a roster listing. Unknown sort fields and
// directions are tolerated; the repository falls back to id ASC.
type Filter struct {
	Search    string
	Rank      *authorization.Rank
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, helper *Helper) error
	Update(ctx context.Context, helper *Helper) error
	// Delete removes the helper and every ticket referencing them as
	// handler, in one transaction.
	Delete(ctx context.Context, helperID uint) error
	GetByID(ctx context.Context, helperID uint) (*Helper, error)
	List(ctx context.Context, filter Filter) ([]*Helper, int64, error)
}
