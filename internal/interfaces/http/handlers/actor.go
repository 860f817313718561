package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/shared/authorization"
	"helperdesk/internal/shared/constants"
	"helperdesk/internal/shared/utils"
)

// currentActor reads the identity the auth middleware stored in the
// context. Returns false and answers 401 itself when the route was
// reached without authentication.
func currentActor(c *gin.Context) (authorization.Actor, bool) {
	adminID, exists := c.Get(constants.ContextKeyAdminID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return authorization.Actor{}, false
	}

	id, ok := adminID.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return authorization.Actor{}, false
	}

	return authorization.Actor{
		ID:   id,
		Name: c.GetString(constants.ContextKeyAdminName),
		Rank: authorization.Rank(c.GetString(constants.ContextKeyAdminRank)),
	}, true
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
