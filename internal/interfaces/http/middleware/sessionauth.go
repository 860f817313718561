package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/infrastructure/auth"
	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type SessionAuthMiddleware struct {
	sessionRepo admin.SessionRepository
	accountRepo admin.AccountRepository
	logger      logger.Interface
}

func NewSessionAuthMiddleware(
	sessionRepo admin.SessionRepository,
	accountRepo admin.AccountRepository,
	logger logger.Interface,
) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// RequireAuth resolves the session cookie to an admin account and puts
// the actor's identity into the gin context. Everything below the
// authentication check answers 401 without hinting whether the token
// ever existed.
func (m *SessionAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		session, err := m.sessionRepo.GetByTokenHash(c.Request.Context(), auth.HashSessionToken(token))
		if err != nil {
			if !errors.IsNotFoundError(err) {
				m.logger.Errorw("failed to look up session", "error", err)
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		if session.IsExpired() {
			if err := m.sessionRepo.Delete(c.Request.Context(), session.ID()); err != nil {
				m.logger.Warnw("failed to delete expired session", "session_id", session.ID(), "error", err)
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		account, err := m.accountRepo.GetByID(c.Request.Context(), session.AdminID())
		if err != nil {
			// account deleted while the session was alive
			m.logger.Warnw("session points at missing account", "admin_id", session.AdminID())
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		session.Touch()
		if err := m.sessionRepo.Update(c.Request.Context(), session); err != nil {
			m.logger.Warnw("failed to record session activity", "session_id", session.ID(), "error", err)
		}

		c.Set(constants.ContextKeyAdminID, account.ID())
		c.Set(constants.ContextKeyAdminName, account.Username())
		c.Set(constants.ContextKeyAdminRank, account.Rank().String())
		c.Set(constants.ContextKeySessionID, session.ID())

		c.Next()
	}
}

// RequireMinRank gates a route group to actors at or above the given
// rank. It assumes RequireAuth already ran.
func RequireMinRank(min authorization.Rank) gin.HandlerFunc {
	return func(c *gin.Context) {
		rank := authorization.Rank(c.GetString(constants.ContextKeyAdminRank))
		if !rank.IsValid() || !rank.AtLeast(min) {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin gates the account, audit and backup surfaces.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireMinRank(authorization.RankSuperAdmin)
}
