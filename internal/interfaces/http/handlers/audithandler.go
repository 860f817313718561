package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/application/audit/usecases"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type AuditHandler struct {
	listAuditUC *usecases.ListAuditUseCase
	logger      logger.Interface
}

func NewAuditHandler(listAuditUC *usecases.ListAuditUseCase, logger logger.Interface) *AuditHandler {
	return &AuditHandler{listAuditUC: listAuditUC, logger: logger}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.listAuditUC.Execute(c.Request.Context(), usecases.ListAuditQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}
