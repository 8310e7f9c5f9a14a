package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// TimerHandler handles session timer endpoints.
type TimerHandler struct {
	service *service.TimerService
}

// NewTimerHandler constructs a timer handler.
func NewTimerHandler(svc *service.TimerService) *TimerHandler {
	return &TimerHandler{service: svc}
}

// Start godoc
// @Summary Start a learning phase or break
// @Tags Timer
// @Accept json
// @Produce json
// @Param payload body dto.StartTimerRequest true "Timer payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timer/start [post]
func (h *TimerHandler) Start(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	status, err := h.service.Start(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

// Status godoc
// @Summary Timer status
// @Description Reports the running session. Observing an expired learning phase credits its study time once.
// @Tags Timer
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timer [get]
func (h *TimerHandler) Status(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	status, err := h.service.Status(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

// Reset godoc
// @Summary Reset the timer
// @Tags Timer
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timer/reset [post]
func (h *TimerHandler) Reset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, h.service.Reset(c.Request.Context(), user))
}
