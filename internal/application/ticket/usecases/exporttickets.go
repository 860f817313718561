package usecases

import (
	"context"

	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/infrastructure/export"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/logger"
)

// ExportTicketsQuery flattens the filtered ticket log into a download
// table; the export walks every page.
type ExportTicketsQuery struct {
	Search    string
	SortBy    string
	SortOrder string
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewExportTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*export.Table, error) {
	filter := ticket.Filter{
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		PageSize:  constants.MaxPageSize,
	}

	table := &export.Table{
		Headers: []string{"ID", "Submitter", "Handler", "Time (sec)", "Rating", "Created At", "Closed At"},
	}

	for page := 1; ; page++ {
		filter.Page = page
		tickets, total, err := uc.ticketRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list tickets for export", "error", err)
			return nil, err
		}

		for _, t := range tickets {
			closedAt := ""
			if t.ClosedAt() != nil {
				closedAt = t.ClosedAt().Format("2006-01-02 15:04:05")
			}
			table.Rows = append(table.Rows, []interface{}{
				t.ID(),
				t.SubmitterUsername(),
				t.HandlerName(),
				t.TimeSpent(),
				t.ResolutionRating(),
				t.CreatedAt().Format("2006-01-02 15:04:05"),
				closedAt,
			})
		}

		if len(tickets) == 0 || int64(len(table.Rows)) >= total {
			break
		}
	}

	uc.logger.Infow("tickets exported", "rows", len(table.Rows))
	return table, nil
}
