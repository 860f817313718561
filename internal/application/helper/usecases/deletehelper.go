package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type DeleteHelperCommand struct {
	HelperID uint
	Actor    authorization.Actor
}

type DeleteHelperUseCase struct {
	helperRepo helper.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewDeleteHelperUseCase(
	helperRepo helper.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *DeleteHelperUseCase {
	return &DeleteHelperUseCase{
		helperRepo: helperRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *DeleteHelperUseCase) Execute(ctx context.Context, cmd DeleteHelperCommand) error {
	uc.logger.Infow("executing delete helper use case", "helper_id", cmd.HelperID, "actor_id", cmd.Actor.ID)

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return err
	}

	targetRank := h.Rank()
	if !authorization.CanAct(cmd.Actor.Rank, authorization.ActionDelete, &targetRank) {
		uc.logger.Warnw("helper deletion denied",
			"actor_rank", cmd.Actor.Rank, "target_rank", targetRank)
		return errors.NewForbiddenError("insufficient privilege to delete helper")
	}

	// the repository removes the helper's tickets in the same transaction
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.helperRepo.Delete(txCtx, cmd.HelperID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete helper", "error", err)
		return err
	}

	uc.recorder.Record(ctx, cmd.Actor, "delete", "helper", &cmd.HelperID)
	uc.logger.Infow("helper deleted", "helper_id", cmd.HelperID)

	return nil
}
