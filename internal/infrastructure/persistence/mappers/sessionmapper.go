package mappers

import (
	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities
// and persistence models.
type SessionMapper interface {
	ToModel(entity *admin.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) (*admin.Session, error)
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *admin.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:             entity.ID(),
		AdminID:        entity.AdminID(),
		TokenHash:      entity.TokenHash(),
		IPAddress:      entity.IPAddress(),
		UserAgent:      entity.UserAgent(),
		ExpiresAt:      entity.ExpiresAt(),
		LastActivityAt: entity.LastActivityAt(),
		CreatedAt:      entity.CreatedAt(),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) (*admin.Session, error) {
	if model == nil {
		return nil, nil
	}
	return admin.ReconstructSession(
		model.ID,
		model.AdminID,
		model.TokenHash,
		model.IPAddress,
		model.UserAgent,
		model.ExpiresAt,
		model.LastActivityAt,
		model.CreatedAt,
	)
}
