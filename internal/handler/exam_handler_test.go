package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/middleware"
	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type memExamRepo struct {
	exams []models.Exam
}

func (m *memExamRepo) List(_ context.Context, _ string) ([]models.Exam, error) {
	out := make([]models.Exam, len(m.exams))
	copy(out, m.exams)
	return out, nil
}

func (m *memExamRepo) Replace(_ context.Context, _ string, exams []models.Exam) error {
	m.exams = exams
	return nil
}

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func newExamTestContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	if body != "" {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Username: "alice"})
	return c, rec
}

func TestExamHandlerListReturnsViews(t *testing.T) {
	repo := &memExamRepo{exams: []models.Exam{
		{Fach: "Mathe", TageVorher: 21, ZielStunden: 10},
		{Fach: "Bio", TageVorher: 21, Archiviert: true, Note: "11"},
	}}
	handler := NewExamHandler(service.NewExamService(repo, nil, nil))

	c, rec := newExamTestContext(t, http.MethodGet, "/exams", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var views []dto.ExamView
	require.NoError(t, json.Unmarshal(envelope.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Mathe", views[0].Exam.Fach)
}

func TestExamHandlerListRejectsUnknownView(t *testing.T) {
	handler := NewExamHandler(service.NewExamService(&memExamRepo{}, nil, nil))

	c, rec := newExamTestContext(t, http.MethodGet, "/exams?view=alles", "")
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestExamHandlerListWithoutUser(t *testing.T) {
	handler := NewExamHandler(service.NewExamService(&memExamRepo{}, nil, nil))

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/exams", nil)

	handler.List(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExamHandlerCreatePersistsExam(t *testing.T) {
	repo := &memExamRepo{}
	handler := NewExamHandler(service.NewExamService(repo, nil, nil))

	c, rec := newExamTestContext(t, http.MethodPost, "/exams",
		`{"fach":"Mathe","datum":"2026-10-01","ziel_stunden":12}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.exams, 1)
	assert.Equal(t, "Mathe", repo.exams[0].Fach)
	assert.Equal(t, 21, repo.exams[0].TageVorher)
}

func TestExamHandlerCreateRejectsBrokenJSON(t *testing.T) {
	handler := NewExamHandler(service.NewExamService(&memExamRepo{}, nil, nil))

	c, rec := newExamTestContext(t, http.MethodPost, "/exams", `{"fach":`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExamHandlerUpdateRejectsBadIndex(t *testing.T) {
	handler := NewExamHandler(service.NewExamService(&memExamRepo{}, nil, nil))

	c, rec := newExamTestContext(t, http.MethodPut, "/exams/abc", `{"ziel_stunden":5}`)
	c.Params = gin.Params{{Key: "index", Value: "abc"}}
	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExamHandlerArchiveThenDelete(t *testing.T) {
	repo := &memExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21}}}
	handler := NewExamHandler(service.NewExamService(repo, nil, nil))

	c, rec := newExamTestContext(t, http.MethodPost, "/exams/0/archive", "")
	c.Params = gin.Params{{Key: "index", Value: "0"}}
	handler.Archive(c)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, repo.exams[0].Archiviert)

	c, rec = newExamTestContext(t, http.MethodDelete, "/exams/0", "")
	c.Params = gin.Params{{Key: "index", Value: "0"}}
	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.exams)
}

func TestExamHandlerDeleteActiveExamFails(t *testing.T) {
	repo := &memExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21}}}
	handler := NewExamHandler(service.NewExamService(repo, nil, nil))

	c, rec := newExamTestContext(t, http.MethodDelete, "/exams/0", "")
	c.Params = gin.Params{{Key: "index", Value: "0"}}
	handler.Delete(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, repo.exams, 1)
}

func TestExamHandlerExportCSV(t *testing.T) {
	repo := &memExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21}}}
	handler := NewExamHandler(service.NewExamService(repo, nil, nil))

	c, rec := newExamTestContext(t, http.MethodGet, "/exams/export", "")
	handler.Export(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "klausuren.csv")
	assert.Contains(t, rec.Body.String(), "Mathe")
}
