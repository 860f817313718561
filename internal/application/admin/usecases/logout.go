package usecases

import (
	"context"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID uint
}

type LogoutUseCase struct {
	sessionRepo admin.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo admin.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "session_id", cmd.SessionID, "error", err)
		return err
	}

	uc.logger.Infow("admin logged out", "session_id", cmd.SessionID)
	return nil
}
