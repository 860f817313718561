package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/application/admin/usecases"
	sharedConfig "helperdesk/internal/shared/config"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      *usecases.LoginUseCase
	logoutUC     *usecases.LogoutUseCase
	cookieConfig sharedConfig.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	cookieConfig sharedConfig.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		logoutUC:     logoutUC,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "logged in", gin.H{
		"admin":      result.Admin,
		"expires_at": result.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, exists := c.Get(constants.ContextKeySessionID)
	if exists {
		if id, ok := sessionID.(uint); ok {
			if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: id}); err != nil {
				h.logger.Warnw("failed to delete session on logout", "session_id", id, "error", err)
			}
		}
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Me reports the signed-in admin's identity, for the console to decide
// which controls to show.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":   actor.ID,
		"name": actor.Name,
		"rank": actor.Rank.String(),
	})
}
