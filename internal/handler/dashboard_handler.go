package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/service"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// DashboardHandler serves the composed day overview.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview godoc
// @Summary Day overview
// @Description Upcoming exams with risk, important open todos, today's seminars and the latest mood entry.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	overview, err := h.service.Overview(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}
