package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaudit "helperdesk/internal/application/audit"
	"helperdesk/internal/infrastructure/backup"
	"helperdesk/internal/shared/logger"
	"helperdesk/internal/shared/utils"
)

type BackupHandler struct {
	runner   *backup.Runner
	recorder *appaudit.Recorder
	logger   logger.Interface
}

func NewBackupHandler(runner *backup.Runner, recorder *appaudit.Recorder, logger logger.Interface) *BackupHandler {
	return &BackupHandler{runner: runner, recorder: recorder, logger: logger}
}

// Trigger starts a background database dump. A 409 means one is
// already running.
func (h *BackupHandler) Trigger(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	status, err := h.runner.Trigger()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.recorder.Record(c.Request.Context(), actor, "trigger", "backup", nil)

	utils.SuccessResponse(c, http.StatusAccepted, "backup started", status)
}

func (h *BackupHandler) Status(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.runner.Status())
}
