package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/authorization"
	apperrors "helperdesk/internal/shared/errors"
)

func superAdminActor() authorization.Actor {
	return authorization.Actor{ID: 1, Name: "root", Rank: authorization.RankSuperAdmin}
}

func TestCreateAdminUseCase_Execute_Success(t *testing.T) {
	var saved *admin.Account
	accounts := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, a *admin.Account) error {
			saved = a
			return a.SetID(5)
		},
	}
	audits := &mockAuditRepository{}

	uc := NewCreateAdminUseCase(accounts, &mockHasher{}, &mockTxManager{}, newTestRecorder(audits), &mockLogger{})

	dto, err := uc.Execute(context.Background(), CreateAdminCommand{
		Username: "curator_anna",
		Password: "long enough",
		Rank:     "Curator",
		Actor:    superAdminActor(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), dto.ID)
	assert.Equal(t, "curator_anna", dto.Username)
	assert.Equal(t, "Curator", dto.Rank)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:long enough", saved.PasswordHash())
}

func TestCreateAdminUseCase_Execute_RequiresSuperAdmin(t *testing.T) {
	uc := NewCreateAdminUseCase(&mockAccountRepository{}, &mockHasher{}, &mockTxManager{}, newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	for _, rank := range []authorization.Rank{
		authorization.RankModer,
		authorization.RankAdmin,
		authorization.RankCurator,
		authorization.RankManager,
	} {
		_, err := uc.Execute(context.Background(), CreateAdminCommand{
			Username: "someone",
			Password: "long enough",
			Rank:     "Moder",
			Actor:    authorization.Actor{ID: 2, Name: "actor", Rank: rank},
		})
		assert.True(t, apperrors.IsForbiddenError(err), "rank %s must not manage accounts", rank)
	}
}

func TestCreateAdminUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewCreateAdminUseCase(&mockAccountRepository{}, &mockHasher{}, &mockTxManager{}, newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateAdminCommand{
		Username: "someone",
		Password: "short",
		Rank:     "Moder",
		Actor:    superAdminActor(),
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateAdminUseCase_Execute_DuplicateUsername(t *testing.T) {
	accounts := &mockAccountRepository{
		SaveFunc: func(ctx context.Context, a *admin.Account) error {
			return apperrors.NewConflictError("username already taken")
		},
	}

	uc := NewCreateAdminUseCase(accounts, &mockHasher{}, &mockTxManager{}, newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateAdminCommand{
		Username: "root",
		Password: "long enough",
		Rank:     "Admin",
		Actor:    superAdminActor(),
	})
	assert.True(t, apperrors.IsConflictError(err))
}
