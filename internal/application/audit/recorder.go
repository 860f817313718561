// Package audit provides the action-log recorder shared by every
// mutating use case plus the read side for the console.
package audit

import (
	"context"

	"helperdesk/internal/domain/audit"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/logger"
)

// Recorder appends entries to the action log. Recording is best
// effort: a failed append is logged and never fails the operation that
// triggered it.
type Recorder struct {
	repo   audit.Repository
	logger logger.Interface
}

func NewRecorder(repo audit.Repository, logger logger.Interface) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record appends one entry for the actor's action.
func (r *Recorder) Record(ctx context.Context, actor authorization.Actor, action, entity string, targetID *uint) {
	entry, err := audit.NewEntry(actor.ID, actor.Name, action, entity, targetID)
	if err == nil {
		err = r.repo.Save(ctx, entry)
	}
	if err != nil {
		r.logger.Warnw("failed to record audit entry",
			"actor_id", actor.ID,
			"action", action,
			"entity", entity,
			"error", err)
	}
}
