package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// BackupHandler handles document export and restore.
type BackupHandler struct {
	service *service.BackupService
}

// NewBackupHandler constructs a backup handler.
func NewBackupHandler(svc *service.BackupService) *BackupHandler {
	return &BackupHandler{service: svc}
}

// Export godoc
// @Summary Download the full document as JSON
// @Tags Backup
// @Produce application/json
// @Success 200 {file} byte
// @Security BearerAuth
// @Router /backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	payload, err := h.service.Export(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=dashboard.json")
	c.Data(http.StatusOK, "application/json", payload)
}

// Restore godoc
// @Summary Restore the document from an uploaded backup
// @Description Overwrites the live document. Requires confirm=true in the payload.
// @Tags Backup
// @Accept json
// @Produce json
// @Param payload body dto.RestoreRequest true "Backup payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /backup/restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	doc, err := h.service.Restore(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}
