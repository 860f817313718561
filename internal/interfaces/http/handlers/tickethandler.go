package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/application/ticket/usecases"
	"helperdesk/internal/infrastructure/export"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  *usecases.CreateTicketUseCase
	getTicketUC     *usecases.GetTicketUseCase
	listTicketsUC   *usecases.ListTicketsUseCase
	deleteTicketUC  *usecases.DeleteTicketUseCase
	exportTicketsUC *usecases.ExportTicketsUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	exportTicketsUC *usecases.ExportTicketsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		deleteTicketUC:  deleteTicketUC,
		exportTicketsUC: exportTicketsUC,
		logger:          logger,
	}
}

type CreateTicketRequest struct {
	SubmitterUsername string     `json:"submitter_username" binding:"required"`
	HandlerHelperID   *uint      `json:"handler_helper_id"`
	TimeSpent         uint       `json:"time_spent"`
	ResolutionRating  int        `json:"resolution_rating" binding:"required"`
	ClosedAt          *time.Time `json:"closed_at"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "submitter_username and resolution_rating are required")
		return
	}

	dto, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		SubmitterUsername: req.SubmitterUsername,
		HandlerHelperID:   req.HandlerHelperID,
		TimeSpent:         req.TimeSpent,
		ResolutionRating:  req.ResolutionRating,
		ClosedAt:          req.ClosedAt,
		Actor:             actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "ticket created")
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dto, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *TicketHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

func (h *TicketHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	table, err := h.exportTicketsUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, *table); err != nil {
		h.logger.Errorw("failed to render ticket export", "format", format, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to render export")
		return
	}

	filename := fmt.Sprintf("tickets_%s%s", time.Now().Format("20060102_150405"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
