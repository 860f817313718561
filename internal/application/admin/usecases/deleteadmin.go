package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type DeleteAdminCommand struct {
	AdminID uint
	Actor   authorization.Actor
}

type DeleteAdminUseCase struct {
	accountRepo admin.AccountRepository
	sessionRepo admin.SessionRepository
	txManager   TransactionManager
	recorder    *appaudit.Recorder
	logger      logger.Interface
}

func NewDeleteAdminUseCase(
	accountRepo admin.AccountRepository,
	sessionRepo admin.SessionRepository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *DeleteAdminUseCase {
	return &DeleteAdminUseCase{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *DeleteAdminUseCase) Execute(ctx context.Context, cmd DeleteAdminCommand) error {
	uc.logger.Infow("executing delete admin use case", "admin_id", cmd.AdminID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.Rank.IsSuperAdmin() {
		return errors.NewForbiddenError("only a SuperAdmin can manage console accounts")
	}

	// an admin never deletes the account they are signed in with
	if cmd.AdminID == cmd.Actor.ID {
		uc.logger.Warnw("self-deletion refused", "admin_id", cmd.AdminID)
		return errors.NewForbiddenError("cannot delete your own account")
	}

	if _, err := uc.accountRepo.GetByID(ctx, cmd.AdminID); err != nil {
		return err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sessionRepo.DeleteByAdminID(txCtx, cmd.AdminID); err != nil {
			return err
		}
		return uc.accountRepo.Delete(txCtx, cmd.AdminID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete admin account", "error", err)
		return err
	}

	uc.recorder.Record(ctx, cmd.Actor, "delete", "admin", &cmd.AdminID)
	uc.logger.Infow("admin account deleted", "admin_id", cmd.AdminID)

	return nil
}
