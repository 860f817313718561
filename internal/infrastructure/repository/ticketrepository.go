package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/infrastructure/persistence/mappers"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/db"
	apperrors "helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/query"
	"helperdesk/internal/shared/utils"
)

// ticketQuerySpec whitelists the sortable columns of the ticket log.
// Free-text search deliberately covers only the submitter and the
// joined handler name; ratings and durations are filtered by sorting,
// not search.
var ticketQuerySpec = query.Spec{
	DefaultOrder: "tickets.id ASC",
	Sortable: map[string]string{
		"id":                 "tickets.id",
		"submitter_username": "tickets.submitter_username",
		"time_spent":         "tickets.time_spent",
		"resolution_rating":  "tickets.resolution_rating",
		"created_at":         "tickets.created_at",
		"closed_at":          "tickets.closed_at",
	},
	SearchText: []string{"tickets.submitter_username", "helpers.name"},
}

// ticketRow carries one listing row including the joined handler name.
type ticketRow struct {
	models.TicketModel
	HandlerName *string
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

// DeleteByHandler removes every ticket the helper handled. Part of the
// helper delete cascade; runs in the caller's transaction.
func (r *TicketRepository) DeleteByHandler(ctx context.Context, helperID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("handler_helper_id = ?", helperID).
		Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tickets by handler: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var row ticketRow
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Select("tickets.*, helpers.name AS handler_name").
		Joins("LEFT JOIN helpers ON helpers.id = tickets.handler_helper_id").
		Where("tickets.id = ?", ticketID).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&row.TicketModel, handlerName(row.HandlerName))
}

// List returns a filtered page of the ticket log with handler names
// joined in. Read failures degrade to an empty page plus a log line.
func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	p := utils.ValidatePagination(filter.Page, filter.PageSize)
	q := query.ListQuery{
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	base := func(tx *gorm.DB) *gorm.DB {
		return tx.
			Model(&models.TicketModel{}).
			Joins("LEFT JOIN helpers ON helpers.id = tickets.handler_helper_id")
	}

	var total int64
	if err := base(tx).
		Scopes(ticketQuerySpec.Filter(q)).
		Count(&total).Error; err != nil {
		logger.Error("ticket list count failed", "error", err)
		return []*ticket.Ticket{}, 0, nil
	}

	var rows []ticketRow
	if err := base(tx).
		Select("tickets.*, helpers.name AS handler_name").
		Scopes(ticketQuerySpec.Scope(q)).
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		logger.Error("ticket list query failed", "error", err)
		return []*ticket.Ticket{}, 0, nil
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i].TicketModel, handlerName(rows[i].HandlerName))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func handlerName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}
