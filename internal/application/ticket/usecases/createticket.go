package usecases

import (
	"context"
	"time"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	SubmitterUsername string
	HandlerHelperID   *uint
	TimeSpent         uint
	ResolutionRating  int
	ClosedAt          *time.Time
	Actor             authorization.Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	helperRepo helper.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	helperRepo helper.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		helperRepo: helperRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"submitter", cmd.SubmitterUsername, "actor_id", cmd.Actor.ID)

	// the handler reference must point at an existing helper
	if cmd.HandlerHelperID != nil {
		if _, err := uc.helperRepo.GetByID(ctx, *cmd.HandlerHelperID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("handler helper does not exist")
			}
			return nil, err
		}
	}

	newTicket, err := ticket.NewTicket(
		cmd.SubmitterUsername,
		cmd.HandlerHelperID,
		cmd.TimeSpent,
		cmd.ResolutionRating,
		cmd.ClosedAt,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	id := newTicket.ID()
	uc.recorder.Record(ctx, cmd.Actor, "create", "ticket", &id)
	uc.logger.Infow("ticket created", "ticket_id", id)

	dto := ticketToDTO(newTicket)
	return &dto, nil
}
