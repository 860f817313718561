package usecases

import (
	"context"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Actor    authorization.Actor
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionManager
	recorder   *appaudit.Recorder
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	// ticket rows have no rank of their own; the gate is Manager+
	if !authorization.CanAct(cmd.Actor.Rank, authorization.ActionDelete, nil) {
		uc.logger.Warnw("ticket deletion denied", "actor_rank", cmd.Actor.Rank)
		return errors.NewForbiddenError("insufficient privilege to delete ticket")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "error", err)
		}
		return err
	}

	uc.recorder.Record(ctx, cmd.Actor, "delete", "ticket", &cmd.TicketID)
	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return nil
}
