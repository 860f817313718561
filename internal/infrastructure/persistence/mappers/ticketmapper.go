package mappers

import (
	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities
// and persistence models. The handler display name comes from the
// listing join, not the tickets table, so ToDomain takes it separately.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, handlerName string) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:                entity.ID(),
		SubmitterUsername: entity.SubmitterUsername(),
		HandlerHelperID:   entity.HandlerHelperID(),
		TimeSpent:         entity.TimeSpent(),
		ResolutionRating:  entity.ResolutionRating(),
		CreatedAt:         entity.CreatedAt(),
		ClosedAt:          entity.ClosedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, handlerName string) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.SubmitterUsername,
		model.HandlerHelperID,
		handlerName,
		model.TimeSpent,
		model.ResolutionRating,
		model.CreatedAt,
		model.ClosedAt,
	)
}
