package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/infrastructure/persistence/mappers"
	"helperdesk/internal/infrastructure/persistence/models"
	apperrors "helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/db"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/query"
	"helperdesk/internal/shared/utils"
)

// helperQuerySpec whitelists the sortable and searchable columns of
// the roster listing. Columns are table-qualified: RANK is a reserved
// word on MySQL 8, and a qualified identifier needs no quoting there.
var helperQuerySpec = query.Spec{
	DefaultOrder: "helpers.id ASC",
	Sortable: map[string]string{
		"id":            "helpers.id",
		"name":          "helpers.name",
		"rank":          "helpers.rank",
		"warning_count": "helpers.warning_count",
	},
	SearchText: []string{"helpers.name", "helpers.rank"},
	SearchCast: []string{"helpers.id", "helpers.warning_count"},
	RankColumn: "helpers.rank",
}

type HelperRepository struct {
	db     *gorm.DB
	mapper mappers.HelperMapper
}

func NewHelperRepository(database *gorm.DB) *HelperRepository {
	return &HelperRepository{
		db:     database,
		mapper: mappers.NewHelperMapper(),
	}
}

func (r *HelperRepository) Save(ctx context.Context, h *helper.Helper) error {
	model := r.mapper.ToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save helper: %w", err)
	}

	return h.SetID(model.ID)
}

func (r *HelperRepository) Update(ctx context.Context, h *helper.Helper) error {
	model := r.mapper.ToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.HelperModel{}).
		Where("id = ?", model.ID).
		Select("name", "rank", "warning_count", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update helper: %w", result.Error)
	}

	return nil
}

// Delete removes the helper and every ticket they handled. Both
// deletes run in the caller's transaction when one is present.
func (r *HelperRepository) Delete(ctx context.Context, helperID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("handler_helper_id = ?", helperID).
		Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete helper tickets: %w", err)
	}

	result := tx.Delete(&models.HelperModel{}, helperID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete helper: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("helper not found")
	}

	return nil
}

func (r *HelperRepository) GetByID(ctx context.Context, helperID uint) (*helper.Helper, error) {
	var model models.HelperModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, helperID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("helper not found")
		}
		return nil, fmt.Errorf("failed to find helper: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns a filtered page of the roster. A read failure yields an
// empty page, not an error; the console stays usable and the cause
// lands in the log.
func (r *HelperRepository) List(ctx context.Context, filter helper.Filter) ([]*helper.Helper, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	p := utils.ValidatePagination(filter.Page, filter.PageSize)
	q := query.ListQuery{
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
		Rank:      filter.Rank,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	var total int64
	if err := tx.
		Model(&models.HelperModel{}).
		Scopes(helperQuerySpec.Filter(q)).
		Count(&total).Error; err != nil {
		logger.Error("helper list count failed", "error", err)
		return []*helper.Helper{}, 0, nil
	}

	var helperModels []*models.HelperModel
	if err := tx.
		Scopes(helperQuerySpec.Scope(q)).
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&helperModels).Error; err != nil {
		logger.Error("helper list query failed", "error", err)
		return []*helper.Helper{}, 0, nil
	}

	helpers, err := r.mapper.ToDomains(helperModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map helpers: %w", err)
	}

	return helpers, total, nil
}
