package admin

import "context"

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID uint) error
	GetByID(ctx context.Context, accountID uint) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID uint) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteExpired(ctx context.Context) error
	DeleteByAdminID(ctx context.Context, adminID uint) error
}
