package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	apperrors "helperdesk/internal/shared/errors"
)

func TestDeleteHelperUseCase_Execute_Success(t *testing.T) {
	var deletedID uint
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Alice", authorization.RankModer, 0), nil
		},
		DeleteFunc: func(ctx context.Context, helperID uint) error {
			deletedID = helperID
			return nil
		},
	}

	uc := NewDeleteHelperUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteHelperCommand{
		HelperID: 7,
		Actor:    managerActor(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), deletedID)
}

func TestDeleteHelperUseCase_Execute_DeniedBelowManager(t *testing.T) {
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Alice", authorization.RankModer, 0), nil
		},
	}

	uc := NewDeleteHelperUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteHelperCommand{
		HelperID: 7,
		Actor:    authorization.Actor{ID: 1, Rank: authorization.RankCurator},
	})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteHelperUseCase_Execute_ManagerCannotDeleteSuperAdmin(t *testing.T) {
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Boss", authorization.RankSuperAdmin, 0), nil
		},
	}

	uc := NewDeleteHelperUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteHelperCommand{
		HelperID: 7,
		Actor:    managerActor(),
	})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteHelperUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return nil, apperrors.NewNotFoundError("helper not found")
		},
	}

	uc := NewDeleteHelperUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteHelperCommand{
		HelperID: 404,
		Actor:    superAdminActor(),
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}
