package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/application/helper/usecases"
	"helperdesk/internal/infrastructure/export"
	"helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type HelperHandler struct {
	createHelperUC   *usecases.CreateHelperUseCase
	getHelperUC      *usecases.GetHelperUseCase
	listHelpersUC    *usecases.ListHelpersUseCase
	updateHelperUC   *usecases.UpdateHelperUseCase
	adjustWarningsUC *usecases.AdjustWarningsUseCase
	deleteHelperUC   *usecases.DeleteHelperUseCase
	exportHelpersUC  *usecases.ExportHelpersUseCase
	logger           logger.Interface
}

func NewHelperHandler(
	createHelperUC *usecases.CreateHelperUseCase,
	getHelperUC *usecases.GetHelperUseCase,
	listHelpersUC *usecases.ListHelpersUseCase,
	updateHelperUC *usecases.UpdateHelperUseCase,
	adjustWarningsUC *usecases.AdjustWarningsUseCase,
	deleteHelperUC *usecases.DeleteHelperUseCase,
	exportHelpersUC *usecases.ExportHelpersUseCase,
	logger logger.Interface,
) *HelperHandler {
	return &HelperHandler{
		createHelperUC:   createHelperUC,
		getHelperUC:      getHelperUC,
		listHelpersUC:    listHelpersUC,
		updateHelperUC:   updateHelperUC,
		adjustWarningsUC: adjustWarningsUC,
		deleteHelperUC:   deleteHelperUC,
		exportHelpersUC:  exportHelpersUC,
		logger:           logger,
	}
}

type CreateHelperRequest struct {
	Name string `json:"name" binding:"required"`
	Rank string `json:"rank" binding:"required,rank"`
}

type UpdateHelperRequest struct {
	Name *string `json:"name"`
	Rank *string `json:"rank"`
}

type AdjustWarningsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *HelperHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateHelperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create helper", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "name and rank are required")
		return
	}

	result, err := h.createHelperUC.Execute(c.Request.Context(), usecases.CreateHelperCommand{
		Name:  req.Name,
		Rank:  req.Rank,
		Actor: actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "helper created")
}

func (h *HelperHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	helperID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dto, err := h.getHelperUC.Execute(c.Request.Context(), usecases.GetHelperQuery{
		HelperID: helperID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *HelperHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listHelpersUC.Execute(c.Request.Context(), usecases.ListHelpersQuery{
		Search:    c.Query("search"),
		Rank:      c.Query("rank"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Helpers, result.Total, result.Page, result.PageSize)
}

func (h *HelperHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	helperID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateHelperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == nil && req.Rank == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nothing to update")
		return
	}

	dto, err := h.updateHelperUC.Execute(c.Request.Context(), usecases.UpdateHelperCommand{
		HelperID: helperID,
		Name:     req.Name,
		Rank:     req.Rank,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "helper updated", dto)
}

func (h *HelperHandler) AdjustWarnings(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	helperID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdjustWarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "delta is required and must be non-zero")
		return
	}

	result, err := h.adjustWarningsUC.Execute(c.Request.Context(), usecases.AdjustWarningsCommand{
		HelperID: helperID,
		Delta:    req.Delta,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "warnings adjusted", result)
}

func (h *HelperHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	helperID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteHelperUC.Execute(c.Request.Context(), usecases.DeleteHelperCommand{
		HelperID: helperID,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "helper deleted", nil)
}

// Export streams the filtered roster as a CSV or XLSX download.
func (h *HelperHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	table, err := h.exportHelpersUC.Execute(c.Request.Context(), usecases.ExportHelpersQuery{
		Search:    c.Query("search"),
		Rank:      c.Query("rank"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, *table); err != nil {
		h.logger.Errorw("failed to render helper export", "format", format, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to render export")
		return
	}

	filename := fmt.Sprintf("helpers_%s%s", time.Now().Format("20060102_150405"), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
