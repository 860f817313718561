package mappers

import (
	"fmt"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/authorization"
)

// AdminAccountMapper handles the conversion between Account domain
// entities and persistence models.
type AdminAccountMapper interface {
	ToModel(entity *admin.Account) *models.AdminAccountModel
	ToDomain(model *models.AdminAccountModel) (*admin.Account, error)
	ToDomains(models []*models.AdminAccountModel) ([]*admin.Account, error)
}

type AdminAccountMapperImpl struct{}

func NewAdminAccountMapper() AdminAccountMapper {
	return &AdminAccountMapperImpl{}
}

func (m *AdminAccountMapperImpl) ToModel(entity *admin.Account) *models.AdminAccountModel {
	if entity == nil {
		return nil
	}
	return &models.AdminAccountModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		PasswordHash: entity.PasswordHash(),
		Rank:         entity.Rank().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *AdminAccountMapperImpl) ToDomain(model *models.AdminAccountModel) (*admin.Account, error) {
	if model == nil {
		return nil, nil
	}

	rank, err := authorization.ParseRank(model.Rank)
	if err != nil {
		return nil, fmt.Errorf("admin account %d has invalid rank: %w", model.ID, err)
	}

	return admin.ReconstructAccount(
		model.ID,
		model.Username,
		model.PasswordHash,
		rank,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *AdminAccountMapperImpl) ToDomains(accountModels []*models.AdminAccountModel) ([]*admin.Account, error) {
	entities := make([]*admin.Account, 0, len(accountModels))
	for _, model := range accountModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
