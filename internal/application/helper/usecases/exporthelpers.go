package usecases

import (
	"context"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/infrastructure/export"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/logger"
)

// ExportHelpersQuery flattens the filtered roster into a download
// table. The same search/sort/rank parameters as the listing apply;
// pagination does not, the export walks every page.
type ExportHelpersQuery struct {
	Search    string
	Rank      string
	SortBy    string
	SortOrder string
}

type ExportHelpersUseCase struct {
	helperRepo helper.Repository
	logger     logger.Interface
}

func NewExportHelpersUseCase(helperRepo helper.Repository, logger logger.Interface) *ExportHelpersUseCase {
	return &ExportHelpersUseCase{helperRepo: helperRepo, logger: logger}
}

func (uc *ExportHelpersUseCase) Execute(ctx context.Context, query ExportHelpersQuery) (*export.Table, error) {
	filter, err := toFilter(ListHelpersQuery{
		Search:    query.Search,
		Rank:      query.Rank,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		PageSize:  constants.MaxPageSize,
	})
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Headers: []string{"ID", "Name", "Rank", "Warnings", "Created At"},
	}

	for page := 1; ; page++ {
		filter.Page = page
		helpers, total, err := uc.helperRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list helpers for export", "error", err)
			return nil, err
		}

		for _, h := range helpers {
			table.Rows = append(table.Rows, []interface{}{
				h.ID(),
				h.Name(),
				h.Rank().String(),
				h.WarningCount(),
				h.CreatedAt().Format("2006-01-02 15:04:05"),
			})
		}

		if len(helpers) == 0 || int64(len(table.Rows)) >= total {
			break
		}
	}

	uc.logger.Infow("helpers exported", "rows", len(table.Rows))
	return table, nil
}
