package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helperdesk/internal/application/admin/usecases"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type AdminHandler struct {
	createAdminUC *usecases.CreateAdminUseCase
	listAdminsUC  *usecases.ListAdminsUseCase
	updateAdminUC *usecases.UpdateAdminUseCase
	deleteAdminUC *usecases.DeleteAdminUseCase
	logger        logger.Interface
}

func NewAdminHandler(
	createAdminUC *usecases.CreateAdminUseCase,
	listAdminsUC *usecases.ListAdminsUseCase,
	updateAdminUC *usecases.UpdateAdminUseCase,
	deleteAdminUC *usecases.DeleteAdminUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		createAdminUC: createAdminUC,
		listAdminsUC:  listAdminsUC,
		updateAdminUC: updateAdminUC,
		deleteAdminUC: deleteAdminUC,
		logger:        logger,
	}
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Rank     string `json:"rank" binding:"required,rank"`
}

type UpdateAdminRequest struct {
	Password *string `json:"password"`
	Rank     *string `json:"rank"`
}

func (h *AdminHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username, password and rank are required")
		return
	}

	dto, err := h.createAdminUC.Execute(c.Request.Context(), usecases.CreateAdminCommand{
		Username: req.Username,
		Password: req.Password,
		Rank:     req.Rank,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "admin account created")
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.listAdminsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", admins)
}

func (h *AdminHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	adminID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == nil && req.Rank == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "nothing to update")
		return
	}

	dto, err := h.updateAdminUC.Execute(c.Request.Context(), usecases.UpdateAdminCommand{
		AdminID:  adminID,
		Password: req.Password,
		Rank:     req.Rank,
		Actor:    actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "admin account updated", dto)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	adminID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.deleteAdminUC.Execute(c.Request.Context(), usecases.DeleteAdminCommand{
		AdminID: adminID,
		Actor:   actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "admin account deleted", nil)
}
