package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

// AdjustWarningsCommand applies a signed delta to a helper's warning
// counter. Decrements clamp at zero.
type AdjustWarningsCommand struct {
	HelperID uint
	Delta    int
	Actor    authorization.Actor
}

type AdjustWarningsResult struct {
	HelperID     uint `json:"helper_id"`
	WarningCount uint `json:"warning_count"`
}

type AdjustWarningsUseCase struct {
	helperRepo helper.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewAdjustWarningsUseCase(
	helperRepo helper.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *AdjustWarningsUseCase {
	return &AdjustWarningsUseCase{
		helperRepo: helperRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *AdjustWarningsUseCase) Execute(ctx context.Context, cmd AdjustWarningsCommand) (*AdjustWarningsResult, error) {
	uc.logger.Infow("executing adjust warnings use case",
		"helper_id", cmd.HelperID, "delta", cmd.Delta, "actor_id", cmd.Actor.ID)

	if cmd.Delta == 0 {
		return nil, errors.NewValidationError("delta must be non-zero")
	}

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return nil, err
	}

	targetRank := h.Rank()
	if !authorization.CanAct(cmd.Actor.Rank, authorization.ActionEdit, &targetRank) {
		uc.logger.Warnw("warning adjustment denied",
			"actor_rank", cmd.Actor.Rank, "target_rank", targetRank)
		return nil, errors.NewForbiddenError("insufficient privilege to adjust warnings")
	}

	newCount := h.AdjustWarnings(cmd.Delta)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.helperRepo.Update(txCtx, h)
	})
	if err != nil {
		uc.logger.Errorw("failed to update helper warnings", "error", err)
		return nil, err
	}

	id := h.ID()
	uc.recorder.Record(ctx, cmd.Actor, "adjust_warnings", "helper", &id)
	uc.logger.Infow("warnings adjusted", "helper_id", id, "warning_count", newCount)

	return &AdjustWarningsResult{
		HelperID:     h.ID(),
		WarningCount: newCount,
	}, nil
}
