package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// MoodHandler handles mood tracker endpoints.
type MoodHandler struct {
	service *service.MoodService
}

// NewMoodHandler constructs a mood handler.
func NewMoodHandler(svc *service.MoodService) *MoodHandler {
	return &MoodHandler{service: svc}
}

// List godoc
// @Summary List mood entries
// @Tags Mood
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /mood [get]
func (h *MoodHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Create godoc
// @Summary Add mood entry
// @Tags Mood
// @Accept json
// @Produce json
// @Param payload body dto.CreateMoodRequest true "Mood payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /mood [post]
func (h *MoodHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Add(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Delete godoc
// @Summary Delete mood entry
// @Tags Mood
// @Produce json
// @Param index path int true "Entry index"
// @Success 204
// @Security BearerAuth
// @Router /mood/{index} [delete]
func (h *MoodHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user, index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// History godoc
// @Summary Mood history and advice
// @Tags Mood
// @Produce json
// @Param days query int false "Trailing window in days" default(14)
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /mood/history [get]
func (h *MoodHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "14"))
	history, err := h.service.History(c.Request.Context(), user, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, history)
}

// Export godoc
// @Summary Export mood log as CSV
// @Tags Mood
// @Produce text/csv
// @Success 200 {file} byte
// @Security BearerAuth
// @Router /mood/export [get]
func (h *MoodHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	payload, err := h.service.ExportCSV(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=mood.csv")
	c.Data(http.StatusOK, "text/csv", payload)
}
