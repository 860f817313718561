package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/logger"
)

type mockHelperRepository struct {
	SaveFunc    func(ctx context.Context, h *helper.Helper) error
	UpdateFunc  func(ctx context.Context, h *helper.Helper) error
	DeleteFunc  func(ctx context.Context, helperID uint) error
	GetByIDFunc func(ctx context.Context, helperID uint) (*helper.Helper, error)
	ListFunc    func(ctx context.Context, filter helper.Filter) ([]*helper.Helper, int64, error)
}

func (m *mockHelperRepository) Save(ctx context.Context, h *helper.Helper) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *mockHelperRepository) Update(ctx context.Context, h *helper.Helper) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHelperRepository) Delete(ctx context.Context, helperID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, helperID)
	}
	return nil
}

func (m *mockHelperRepository) GetByID(ctx context.Context, helperID uint) (*helper.Helper, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, helperID)
	}
	return nil, nil
}

func (m *mockHelperRepository) List(ctx context.Context, filter helper.Filter) ([]*helper.Helper, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockAuditRepository struct {
	SaveFunc       func(ctx context.Context, e *audit.Entry) error
	ListRecentFunc func(ctx context.Context, limit int) ([]*audit.Entry, error)
}

func (m *mockAuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditRepository) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestRecorder(repo *mockAuditRepository) *appaudit.Recorder {
	return appaudit.NewRecorder(repo, &mockLogger{})
}
