package usecases

import (
	"context"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type GetHelperQuery struct {
	HelperID uint
	Actor    authorization.Actor
}

type GetHelperUseCase struct {
	helperRepo helper.Repository
	logger     logger.Interface
}

func NewGetHelperUseCase(helperRepo helper.Repository, logger logger.Interface) *GetHelperUseCase {
	return &GetHelperUseCase{helperRepo: helperRepo, logger: logger}
}

func (uc *GetHelperUseCase) Execute(ctx context.Context, query GetHelperQuery) (*HelperDTO, error) {
	h, err := uc.helperRepo.GetByID(ctx, query.HelperID)
	if err != nil {
		return nil, err
	}

	targetRank := h.Rank()
	if !authorization.CanAct(query.Actor.Rank, authorization.ActionView, &targetRank) {
		uc.logger.Warnw("helper view denied",
			"actor_rank", query.Actor.Rank, "target_rank", targetRank)
		return nil, errors.NewForbiddenError("insufficient privilege to view helper")
	}

	dto := helperToDTO(h)
	return &dto, nil
}
