package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies login credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type CreateAdminExecutor interface {
	Execute(ctx context.Context, cmd CreateAdminCommand) (*AdminDTO, error)
}

type UpdateAdminExecutor interface {
	Execute(ctx context.Context, cmd UpdateAdminCommand) (*AdminDTO, error)
}

type DeleteAdminExecutor interface {
	Execute(ctx context.Context, cmd DeleteAdminCommand) error
}

type ListAdminsExecutor interface {
	Execute(ctx context.Context) ([]AdminDTO, error)
}
