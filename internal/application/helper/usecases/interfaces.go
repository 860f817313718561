package usecases

import (
	"context"

	"helperdesk/internal/infrastructure/export"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateHelperExecutor interface {
	Execute(ctx context.Context, cmd CreateHelperCommand) (*CreateHelperResult, error)
}

type GetHelperExecutor interface {
	Execute(ctx context.Context, query GetHelperQuery) (*HelperDTO, error)
}

type ListHelpersExecutor interface {
	Execute(ctx context.Context, query ListHelpersQuery) (*ListHelpersResult, error)
}

type UpdateHelperExecutor interface {
	Execute(ctx context.Context, cmd UpdateHelperCommand) (*HelperDTO, error)
}

type AdjustWarningsExecutor interface {
	Execute(ctx context.Context, cmd AdjustWarningsCommand) (*AdjustWarningsResult, error)
}

type DeleteHelperExecutor interface {
	Execute(ctx context.Context, cmd DeleteHelperCommand) error
}

type ExportHelpersExecutor interface {
	Execute(ctx context.Context, query ExportHelpersQuery) (*export.Table, error)
}
