package usecases

import (
	"context"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type ListHelpersQuery struct {
	Search    string
	Rank      string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type ListHelpersResult struct {
	Helpers  []HelperDTO
	Total    int64
	Page     int
	PageSize int
}

type ListHelpersUseCase struct {
	helperRepo helper.Repository
	logger     logger.Interface
}

func NewListHelpersUseCase(helperRepo helper.Repository, logger logger.Interface) *ListHelpersUseCase {
	return &ListHelpersUseCase{helperRepo: helperRepo, logger: logger}
}

func (uc *ListHelpersUseCase) Execute(ctx context.Context, query ListHelpersQuery) (*ListHelpersResult, error) {
	filter, err := toFilter(query)
	if err != nil {
		return nil, err
	}

	helpers, total, err := uc.helperRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list helpers", "error", err)
		return nil, err
	}

	dtos := make([]HelperDTO, 0, len(helpers))
	for _, h := range helpers {
		dtos = append(dtos, helperToDTO(h))
	}

	return &ListHelpersResult{
		Helpers:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// toFilter validates the optional rank filter and normalizes the
// pagination; sort validation happens in the repository allow-list.
func toFilter(query ListHelpersQuery) (helper.Filter, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := helper.Filter{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	if query.Rank != "" {
		rank, err := authorization.ParseRank(query.Rank)
		if err != nil {
			return helper.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Rank = &rank
	}

	return filter, nil
}
