package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// SeminarHandler handles seminar endpoints.
type SeminarHandler struct {
	service *service.SeminarService
}

// NewSeminarHandler constructs a seminar handler.
func NewSeminarHandler(svc *service.SeminarService) *SeminarHandler {
	return &SeminarHandler{service: svc}
}

// List godoc
// @Summary List seminars with credit point totals
// @Tags Seminars
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /seminars [get]
func (h *SeminarHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	seminars, totals, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"punkte_gesamt":     totals.PunkteGesamt,
		"punkte_absolviert": totals.PunkteAbsolviert,
	}
	response.JSON(c, http.StatusOK, seminars, meta)
}

// Create godoc
// @Summary Add seminar
// @Tags Seminars
// @Accept json
// @Produce json
// @Param payload body dto.CreateSeminarRequest true "Seminar payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /seminars [post]
func (h *SeminarHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateSeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	seminar, err := h.service.Add(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, seminar)
}

// Update godoc
// @Summary Update seminar
// @Tags Seminars
// @Accept json
// @Produce json
// @Param index path int true "Seminar index"
// @Param payload body dto.UpdateSeminarRequest true "Seminar payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /seminars/{index} [put]
func (h *SeminarHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.UpdateSeminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	seminar, err := h.service.Update(c.Request.Context(), user, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, seminar)
}

// Delete godoc
// @Summary Delete seminar
// @Tags Seminars
// @Produce json
// @Param index path int true "Seminar index"
// @Success 204
// @Security BearerAuth
// @Router /seminars/{index} [delete]
func (h *SeminarHandler) Delete(c *gin.Context) {
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
