package usecases

import (
	"context"
	"time"

	"helperdesk/internal/domain/audit"
	"helperdesk/internal/shared/logger"
)

type ListAuditQuery struct {
	Limit int
}

type AuditEntryDTO struct {
	ID        uint      `json:"id"`
	ActorID   uint      `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	TargetID  *uint     `json:"target_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ListAuditUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditUseCase {
	return &ListAuditUseCase{auditRepo: auditRepo, logger: logger}
}

// Execute returns the most recent action-log entries, newest first.
func (uc *ListAuditUseCase) Execute(ctx context.Context, query ListAuditQuery) ([]AuditEntryDTO, error) {
	entries, err := uc.auditRepo.ListRecent(ctx, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, err
	}

	dtos := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, AuditEntryDTO{
			ID:        e.ID(),
			ActorID:   e.ActorID(),
			ActorName: e.ActorName(),
			Action:    e.Action(),
			Entity:    e.Entity(),
			TargetID:  e.TargetID(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return dtos, nil
}
