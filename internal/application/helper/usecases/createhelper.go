package usecases

import (
	"context"
	"time"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type CreateHelperCommand struct {
	Name  string
	Rank  string
	Actor authorization.Actor
}

type CreateHelperResult struct {
	HelperID  uint      `json:"helper_id"`
	Name      string    `json:"name"`
	Rank      string    `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateHelperUseCase struct {
	helperRepo helper.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewCreateHelperUseCase(
	helperRepo helper.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *CreateHelperUseCase {
	return &CreateHelperUseCase{
		helperRepo: helperRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *CreateHelperUseCase) Execute(ctx context.Context, cmd CreateHelperCommand) (*CreateHelperResult, error) {
	uc.logger.Infow("executing create helper use case", "name", cmd.Name, "actor_id", cmd.Actor.ID)

	rank, err := authorization.ParseRank(cmd.Rank)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Manager and above may create; a Manager still cannot mint a
	// SuperAdmin-ranked helper.
	if !authorization.CanAct(cmd.Actor.Rank, authorization.ActionCreate, &rank) {
		uc.logger.Warnw("helper creation denied",
			"actor_rank", cmd.Actor.Rank, "target_rank", rank)
		return nil, errors.NewForbiddenError("insufficient privilege to create helper")
	}

	newHelper, err := helper.NewHelper(cmd.Name, rank)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.helperRepo.Save(txCtx, newHelper)
	})
	if err != nil {
		uc.logger.Errorw("failed to save helper", "error", err)
		return nil, err
	}

	id := newHelper.ID()
	uc.recorder.Record(ctx, cmd.Actor, "create", "helper", &id)
	uc.logger.Infow("helper created", "helper_id", id, "rank", rank)

	return &CreateHelperResult{
		HelperID:  newHelper.ID(),
		Name:      newHelper.Name(),
		Rank:      newHelper.Rank().String(),
		CreatedAt: newHelper.CreatedAt(),
	}, nil
}
