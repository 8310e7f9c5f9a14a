package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// StudyPlanHandler handles weekly study plan endpoints.
type StudyPlanHandler struct {
	service *service.StudyPlanService
}

// NewStudyPlanHandler constructs a study plan handler.
func NewStudyPlanHandler(svc *service.StudyPlanService) *StudyPlanHandler {
	return &StudyPlanHandler{service: svc}
}

// List godoc
// @Summary List study plan entries
// @Tags StudyPlan
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /studyplan [get]
func (h *StudyPlanHandler) List(c *gin.Context) {
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
// @Summary Add study plan entry
// @Tags StudyPlan
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudyPlanRequest true "Plan payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /studyplan [post]
func (h *StudyPlanHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateStudyPlanRequest
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

// Update godoc
// @Summary Update study plan entry
// @Tags StudyPlan
// @Accept json
// @Produce json
// @Param index path int true "Entry index"
// @Param payload body dto.UpdateStudyPlanRequest true "Plan payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /studyplan/{index} [put]
func (h *StudyPlanHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Update(c.Request.Context(), user, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete study plan entry
// @Tags StudyPlan
// @Produce json
// @Param index path int true "Entry index"
// @Success 204
// @Security BearerAuth
// @Router /studyplan/{index} [delete]
func (h *StudyPlanHandler) Delete(c *gin.Context) {
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

// Week godoc
// @Summary Weekly hour distribution
// @Description Total planned hours plus the suggested Monday to Friday split.
// @Tags StudyPlan
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /studyplan/week [get]
func (h *StudyPlanHandler) Week(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	plan, err := h.service.Week(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan)
}
