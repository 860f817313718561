package usecases

import (
	"context"

	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type ListTicketsResult struct {
	Tickets  []TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := ticket.Filter{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ticketToDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  dtos,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
