package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helperdesk/internal/domain/audit"
	"helperdesk/internal/infrastructure/persistence/mappers"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/db"
	"helperdesk/internal/shared/logger"
)

type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditEntryMapper
}

func NewAuditRepository(database *gorm.DB) *AuditRepository {
	return &AuditRepository{
		db:     database,
		mapper: mappers.NewAuditEntryMapper(),
	}
}

func (r *AuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}

	return e.SetID(model.ID)
}

// ListRecent returns up to limit entries, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	if limit < 1 {
		limit = constants.DefaultAuditLimit
	}
	if limit > constants.MaxAuditLimit {
		limit = constants.MaxAuditLimit
	}

	var entryModels []*models.AuditEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		logger.Error("audit list query failed", "error", err)
		return []*audit.Entry{}, nil
	}

	return r.mapper.ToDomains(entryModels)
}
