package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// ExamHandler handles exam endpoints.
type ExamHandler struct {
	service *service.ExamService
}

// NewExamHandler constructs an exam handler.
func NewExamHandler(svc *service.ExamService) *ExamHandler {
	return &ExamHandler{service: svc}
}

// List godoc
// @Summary List exams
// @Tags Exams
// @Produce json
// @Param view query string false "View: active or archive" default(active)
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	exams, err := h.service.List(c.Request.Context(), user, c.Query("view"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams)
}

// Create godoc
// @Summary Add exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param payload body dto.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.service.Add(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Update godoc
// @Summary Update exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param index path int true "Exam index"
// @Param payload body dto.UpdateExamRequest true "Exam payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /exams/{index} [put]
func (h *ExamHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.service.Update(c.Request.Context(), user, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Archive godoc
// @Summary Archive exam
// @Description Moves an exam into the archive. Archiving cannot be undone.
// @Tags Exams
// @Produce json
// @Param index path int true "Exam index"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /exams/{index}/archive [post]
func (h *ExamHandler) Archive(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.service.Archive(c.Request.Context(), user, index); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"archived": true})
}

// Grade godoc
// @Summary Grade archived exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param index path int true "Exam index"
// @Param payload body dto.GradeExamRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /exams/{index}/grade [put]
func (h *ExamHandler) Grade(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req dto.GradeExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.service.SetGrade(c.Request.Context(), user, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Delete godoc
// @Summary Delete archived exam
// @Tags Exams
// @Produce json
// @Param index path int true "Exam index"
// @Success 204
// @Security BearerAuth
// @Router /exams/{index} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
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

// Export godoc
// @Summary Export exams
// @Tags Exams
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Format: csv or pdf" default(csv)
// @Success 200 {file} byte
// @Security BearerAuth
// @Router /exams/export [get]
func (h *ExamHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), user, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=klausuren.%s", ext))
	c.Data(http.StatusOK, contentType, payload)
}
