package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/persistence/mappers"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/db"
	apperrors "helperdesk/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     database,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *admin.Session) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SessionRepository) Update(ctx context.Context, s *admin.Session) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SessionModel{}).
		Where("id = ?", model.ID).
		Select("last_activity_at", "expires_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.SessionModel{}, sessionID).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*admin.Session, error) {
	var model models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// DeleteExpired removes sessions past their expiry. Called
// opportunistically on login.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("expires_at < ?", time.Now()).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteByAdminID(ctx context.Context, adminID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("admin_id = ?", adminID).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions for admin: %w", err)
	}

	return nil
}
