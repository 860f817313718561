package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

// UpdateHelperCommand changes the name and/or rank of a helper. Nil
// fields are left untouched.
type UpdateHelperCommand struct {
	HelperID uint
	Name     *string
	Rank     *string
	Actor    authorization.Actor
}

type UpdateHelperUseCase struct {
	helperRepo helper.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewUpdateHelperUseCase(
	helperRepo helper.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *UpdateHelperUseCase {
	return &UpdateHelperUseCase{
		helperRepo: helperRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *UpdateHelperUseCase) Execute(ctx context.Context, cmd UpdateHelperCommand) (*HelperDTO, error) {
	uc.logger.Infow("executing update helper use case", "helper_id", cmd.HelperID, "actor_id", cmd.Actor.ID)

	h, err := uc.helperRepo.GetByID(ctx, cmd.HelperID)
	if err != nil {
		return nil, err
	}

	targetRank := h.Rank()
	if !authorization.CanAct(cmd.Actor.Rank, authorization.ActionEdit, &targetRank) {
		uc.logger.Warnw("helper update denied",
			"actor_rank", cmd.Actor.Rank, "target_rank", targetRank)
		return nil, errors.NewForbiddenError("insufficient privilege to edit helper")
	}

	if cmd.Name != nil {
		if err := h.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Rank != nil {
		newRank, err := authorization.ParseRank(*cmd.Rank)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		// moving someone to a rank also requires standing at or above it
		if !authorization.CanAssignRank(cmd.Actor.Rank, newRank) {
			uc.logger.Warnw("rank assignment denied",
				"actor_rank", cmd.Actor.Rank, "new_rank", newRank)
			return nil, errors.NewForbiddenError("insufficient privilege to assign rank")
		}
		if err := h.ChangeRank(newRank); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.helperRepo.Update(txCtx, h)
	})
	if err != nil {
		uc.logger.Errorw("failed to update helper", "error", err)
		return nil, err
	}

	id := h.ID()
	uc.recorder.Record(ctx, cmd.Actor, "update", "helper", &id)

	dto := helperToDTO(h)
	return &dto, nil
}
