package usecases

import (
	"context"
	"fmt"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/admin"
	"helperdesk/internal/domain/audit"
	"helperdesk/internal/shared/logger"
)

type mockAccountRepository struct {
	SaveFunc          func(ctx context.Context, a *admin.Account) error
	UpdateFunc        func(ctx context.Context, a *admin.Account) error
	DeleteFunc        func(ctx context.Context, accountID uint) error
	GetByIDFunc       func(ctx context.Context, accountID uint) (*admin.Account, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*admin.Account, error)
	ListFunc          func(ctx context.Context) ([]*admin.Account, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, a *admin.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) Update(ctx context.Context, a *admin.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, accountID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, accountID uint) (*admin.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAccountRepository) GetByUsername(ctx context.Context, username string) (*admin.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAccountRepository) List(ctx context.Context) ([]*admin.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSessionRepository struct {
	SaveFunc            func(ctx context.Context, s *admin.Session) error
	UpdateFunc          func(ctx context.Context, s *admin.Session) error
	DeleteFunc          func(ctx context.Context, sessionID uint) error
	GetByTokenHashFunc  func(ctx context.Context, tokenHash string) (*admin.Session, error)
	DeleteExpiredFunc   func(ctx context.Context) error
	DeleteByAdminIDFunc func(ctx context.Context, adminID uint) error
}

func (m *mockSessionRepository) Save(ctx context.Context, s *admin.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) Update(ctx context.Context, s *admin.Session) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, sessionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*admin.Session, error) {
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByAdminID(ctx context.Context, adminID uint) error {
	if m.DeleteByAdminIDFunc != nil {
		return m.DeleteByAdminIDFunc(ctx, adminID)
	}
	return nil
}

// mockHasher treats "hashed:" + password as the stored hash.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockAuditRepository struct {
	SaveFunc func(ctx context.Context, e *audit.Entry) error
}

func (m *mockAuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditRepository) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	return nil, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestRecorder(repo *mockAuditRepository) *appaudit.Recorder {
	return appaudit.NewRecorder(repo, &mockLogger{})
}
