package mappers

import (
	"helperdesk/internal/domain/audit"
	"helperdesk/internal/infrastructure/persistence/models"
)

// AuditEntryMapper handles the conversion between audit Entry domain
// entities and persistence models.
type AuditEntryMapper interface {
	ToModel(entity *audit.Entry) *models.AuditEntryModel
	ToDomain(model *models.AuditEntryModel) (*audit.Entry, error)
	ToDomains(models []*models.AuditEntryModel) ([]*audit.Entry, error)
}

type AuditEntryMapperImpl struct{}

func NewAuditEntryMapper() AuditEntryMapper {
	return &AuditEntryMapperImpl{}
}

func (m *AuditEntryMapperImpl) ToModel(entity *audit.Entry) *models.AuditEntryModel {
	if entity == nil {
		return nil
	}
	return &models.AuditEntryModel{
		ID:        entity.ID(),
		ActorID:   entity.ActorID(),
		ActorName: entity.ActorName(),
		Action:    entity.Action(),
		Entity:    entity.Entity(),
		TargetID:  entity.TargetID(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *AuditEntryMapperImpl) ToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	if model == nil {
		return nil, nil
	}
	return audit.ReconstructEntry(
		model.ID,
		model.ActorID,
		model.ActorName,
		model.Action,
		model.Entity,
		model.TargetID,
		model.CreatedAt,
	)
}

func (m *AuditEntryMapperImpl) ToDomains(entryModels []*models.AuditEntryModel) ([]*audit.Entry, error) {
	entities := make([]*audit.Entry, 0, len(entryModels))
	for _, model := range entryModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
