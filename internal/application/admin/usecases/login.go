package usecases

import (
	"context"
	"time"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/auth"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginResult carries the plaintext session token exactly once, on its
// way into the cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     AdminDTO
}

type LoginUseCase struct {
	accountRepo  admin.AccountRepository
	sessionRepo  admin.SessionRepository
	hasher       PasswordHasher
	expiresHours int
	logger       logger.Interface
}

func NewLoginUseCase(
	accountRepo admin.AccountRepository,
	sessionRepo admin.SessionRepository,
	hasher PasswordHasher,
	expiresHours int,
	logger logger.Interface,
) *LoginUseCase {
	if expiresHours < 1 {
		expiresHours = 24
	}
	return &LoginUseCase{
		accountRepo:  accountRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		expiresHours: expiresHours,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	account, err := uc.accountRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// same answer as a wrong password; usernames are not probeable
			uc.logger.Warnw("login attempt for unknown username", "username", cmd.Username)
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	// sweep stale sessions while we are here
	if err := uc.sessionRepo.DeleteExpired(ctx); err != nil {
		uc.logger.Warnw("failed to sweep expired sessions", "error", err)
	}

	token, tokenHash, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, errors.NewInternalError("failed to create session")
	}

	expiresAt := time.Now().Add(time.Duration(uc.expiresHours) * time.Hour)
	session, err := admin.NewSession(account.ID(), tokenHash, cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err)
		return nil, err
	}

	uc.logger.Infow("admin logged in", "admin_id", account.ID(), "username", account.Username())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     accountToDTO(account),
	}, nil
}
