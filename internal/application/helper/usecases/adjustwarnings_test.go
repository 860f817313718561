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

func TestAdjustWarningsUseCase_Execute_Increment(t *testing.T) {
	var updated *helper.Helper
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Alice", authorization.RankModer, 1), nil
		},
		UpdateFunc: func(ctx context.Context, h *helper.Helper) error {
			updated = h
			return nil
		},
	}

	uc := NewAdjustWarningsUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	result, err := uc.Execute(context.Background(), AdjustWarningsCommand{
		HelperID: 5,
		Delta:    2,
		Actor:    managerActor(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.WarningCount)
	require.NotNil(t, updated)
	assert.Equal(t, uint(3), updated.WarningCount())
}

func TestAdjustWarningsUseCase_Execute_ClampsAtZero(t *testing.T) {
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Alice", authorization.RankModer, 2), nil
		},
	}

	uc := NewAdjustWarningsUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	result, err := uc.Execute(context.Background(), AdjustWarningsCommand{
		HelperID: 5,
		Delta:    -10,
		Actor:    managerActor(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(0), result.WarningCount)
}

func TestAdjustWarningsUseCase_Execute_ZeroDeltaRejected(t *testing.T) {
	uc := NewAdjustWarningsUseCase(&mockHelperRepository{}, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	_, err := uc.Execute(context.Background(), AdjustWarningsCommand{
		HelperID: 5,
		Delta:    0,
		Actor:    managerActor(),
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAdjustWarningsUseCase_Execute_DeniedAboveOwnLevel(t *testing.T) {
	mockRepo := &mockHelperRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*helper.Helper, error) {
			return reconstructedHelper(t, id, "Boss", authorization.RankManager, 0), nil
		},
	}

	uc := NewAdjustWarningsUseCase(mockRepo, &mockTxManager{},
		newTestRecorder(&mockAuditRepository{}), &mockLogger{})

	_, err := uc.Execute(context.Background(), AdjustWarningsCommand{
		HelperID: 5,
		Delta:    1,
		Actor:    authorization.Actor{ID: 1, Rank: authorization.RankCurator},
	})
	assert.True(t, apperrors.IsForbiddenError(err))
}
