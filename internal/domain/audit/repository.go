package audit

import "context"

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}
