package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

const minPasswordLength = 8

type CreateAdminCommand struct {
	Username string
	Password string
	Rank     string
	Actor    authorization.Actor
}

type CreateAdminUseCase struct {
	accountRepo admin.AccountRepository
	hasher      PasswordHasher
	txManager   TransactionManager
	recorder    *appaudit.Recorder
	logger      logger.Interface
}

func NewCreateAdminUseCase(
	accountRepo admin.AccountRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		txManager:   txManager,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*AdminDTO, error) {
	uc.logger.Infow("executing create admin use case", "username", cmd.Username, "actor_id", cmd.Actor.ID)

	if !cmd.Actor.Rank.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only a SuperAdmin can manage console accounts")
	}

	rank, err := authorization.ParseRank(cmd.Rank)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	account, err := admin.NewAccount(cmd.Username, hash, rank)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.accountRepo.Save(txCtx, account)
	})
	if err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to save admin account", "error", err)
		}
		return nil, err
	}

	id := account.ID()
	uc.recorder.Record(ctx, cmd.Actor, "create", "admin", &id)
	uc.logger.Infow("admin account created", "admin_id", id, "rank", rank)

	dto := accountToDTO(account)
	return &dto, nil
}
