package mappers

import (
	"fmt"

	"helperdesk/internal/domain/helper"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/authorization"
)

// HelperMapper handles the conversion between Helper domain entities
// and persistence models.
type HelperMapper interface {
	ToModel(entity *helper.Helper) *models.HelperModel
	ToDomain(model *models.HelperModel) (*helper.Helper, error)
	ToDomains(models []*models.HelperModel) ([]*helper.Helper, error)
}

type HelperMapperImpl struct{}

func NewHelperMapper() HelperMapper {
	return &HelperMapperImpl{}
}

func (m *HelperMapperImpl) ToModel(entity *helper.Helper) *models.HelperModel {
	if entity == nil {
		return nil
	}
	return &models.HelperModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Rank:         entity.Rank().String(),
		WarningCount: entity.WarningCount(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *HelperMapperImpl) ToDomain(model *models.HelperModel) (*helper.Helper, error) {
	if model == nil {
		return nil, nil
	}

	rank, err := authorization.ParseRank(model.Rank)
	if err != nil {
		return nil, fmt.Errorf("helper %d has invalid rank: %w", model.ID, err)
	}

	return helper.ReconstructHelper(
		model.ID,
		model.Name,
		rank,
		model.WarningCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *HelperMapperImpl) ToDomains(helperModels []*models.HelperModel) ([]*helper.Helper, error) {
	entities := make([]*helper.Helper, 0, len(helperModels))
	for _, model := range helperModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
