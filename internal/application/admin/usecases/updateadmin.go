package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

// UpdateAdminCommand changes the password and/or rank of an account.
// Nil fields are left untouched.
type UpdateAdminCommand struct {
	AdminID  uint
	Password *string
	Rank     *string
	Actor    authorization.Actor
}

type UpdateAdminUseCase struct {
	accountRepo admin.AccountRepository
	hasher      PasswordHasher
	txManager   TransactionManager
	recorder    *appaudit.Recorder
	logger      logger.Interface
}

func NewUpdateAdminUseCase(
	accountRepo admin.AccountRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *UpdateAdminUseCase {
	return &UpdateAdminUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		txManager:   txManager,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *UpdateAdminUseCase) Execute(ctx context.Context, cmd UpdateAdminCommand) (*AdminDTO, error) {
	uc.logger.Infow("executing update admin use case", "admin_id", cmd.AdminID, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.Rank.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only a SuperAdmin can manage console accounts")
	}

	account, err := uc.accountRepo.GetByID(ctx, cmd.AdminID)
	if err != nil {
		return nil, err
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := account.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Rank != nil {
		newRank, err := authorization.ParseRank(*cmd.Rank)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := account.ChangeRank(newRank); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.accountRepo.Update(txCtx, account)
	})
	if err != nil {
		uc.logger.Errorw("failed to update admin account", "error", err)
		return nil, err
	}

	uc.recorder.Record(ctx, cmd.Actor, "update", "admin", &cmd.AdminID)

	dto := accountToDTO(account)
	return &dto, nil
}
