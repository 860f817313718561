package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/persistence/mappers"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/db"
	apperrors "helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type AdminAccountRepository struct {
	db     *gorm.DB
	mapper mappers.AdminAccountMapper
}

func NewAdminAccountRepository(database *gorm.DB) *AdminAccountRepository {
	return &AdminAccountRepository{
		db:     database,
		mapper: mappers.NewAdminAccountMapper(),
	}
}

func (r *AdminAccountRepository) Save(ctx context.Context, a *admin.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username already taken")
		}
		return fmt.Errorf("failed to save admin account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AdminAccountRepository) Update(ctx context.Context, a *admin.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AdminAccountModel{}).
		Where("id = ?", model.ID).
		Select("password_hash", "rank", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin account: %w", result.Error)
	}

	return nil
}

func (r *AdminAccountRepository) Delete(ctx context.Context, accountID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AdminAccountModel{}, accountID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("admin account not found")
	}

	return nil
}

func (r *AdminAccountRepository) GetByID(ctx context.Context, accountID uint) (*admin.Account, error) {
	var model models.AdminAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("admin account not found")
		}
		return nil, fmt.Errorf("failed to find admin account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AdminAccountRepository) GetByUsername(ctx context.Context, username string) (*admin.Account, error) {
	var model models.AdminAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("admin account not found")
		}
		return nil, fmt.Errorf("failed to find admin account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns every account, id ascending. The roster is small by
// construction; no pagination.
func (r *AdminAccountRepository) List(ctx context.Context) ([]*admin.Account, error) {
	var accountModels []*models.AdminAccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&accountModels).Error; err != nil {
		logger.Error("admin account list query failed", "error", err)
		return []*admin.Account{}, nil
	}

	return r.mapper.ToDomains(accountModels)
}
