package usecases

import (
	"context"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/logger"
)

type ListAdminsUseCase struct {
	accountRepo admin.AccountRepository
	logger      logger.Interface
}

func NewListAdminsUseCase(accountRepo admin.AccountRepository, logger logger.Interface) *ListAdminsUseCase {
	return &ListAdminsUseCase{accountRepo: accountRepo, logger: logger}
}

func (uc *ListAdminsUseCase) Execute(ctx context.Context) ([]AdminDTO, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admin accounts", "error", err)
		return nil, err
	}

	dtos := make([]AdminDTO, 0, len(accounts))
	for _, a := range accounts {
		dtos = append(dtos, accountToDTO(a))
	}

	return dtos, nil
}
