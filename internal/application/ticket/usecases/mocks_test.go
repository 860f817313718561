package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, ticketID uint) error
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	DeleteByHandlerFunc func(ctx context.Context, helperID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) DeleteByHandler(ctx context.Context, helperID uint) error {
	if m.DeleteByHandlerFunc != nil {
		return m.DeleteByHandlerFunc(ctx, helperID)
	}
	return nil
}

type mockHelperRepository struct {
	GetByIDFunc func(ctx context.Context, helperID uint) (*helper.Helper, error)
}

func (m *mockHelperRepository) Save(ctx context.Context, h *helper.Helper) error   { return nil }
func (m *mockHelperRepository) Update(ctx context.Context, h *helper.Helper) error { return nil }
func (m *mockHelperRepository) Delete(ctx context.Context, helperID uint) error    { return nil }

func (m *mockHelperRepository) GetByID(ctx context.Context, helperID uint) (*helper.Helper, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, helperID)
	}
	return nil, nil
}

func (m *mockHelperRepository) List(ctx context.Context, filter helper.Filter) ([]*helper.Helper, int64, error) {
	return nil, 0, nil
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
