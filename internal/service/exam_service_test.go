package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type mockExamRepo struct {
	exams      []models.Exam
	listErr    error
	replaceErr error
	replaced   int
}

func (m *mockExamRepo) List(_ context.Context, _ string) ([]models.Exam, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Exam, len(m.exams))
	copy(out, m.exams)
	return out, nil
}

func (m *mockExamRepo) Replace(_ context.Context, _ string, exams []models.Exam) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced++
	m.exams = exams
	return nil
}

func newExamService(repo *mockExamRepo) *ExamService {
	svc := NewExamService(repo, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExamServiceAddDefaultsWindow(t *testing.T) {
	repo := &mockExamRepo{}
	svc := newExamService(repo)

	view, err := svc.Add(context.Background(), "alice", dto.CreateExamRequest{Fach: "Mathe", Datum: "2026-10-01"})
	require.NoError(t, err)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 21, view.Exam.TageVorher)
	assert.Zero(t, view.Exam.GelerntStunden)
	assert.False(t, view.Exam.Archiviert)
}

func TestExamServiceListSeparatesViews(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{
		{Fach: "Bio", Datum: models.ParseDate("2026-10-05"), TageVorher: 21},
		{Fach: "Mathe", Datum: models.ParseDate("2026-09-10"), TageVorher: 21},
		{Fach: "Latein", Archiviert: true, Note: "11", TageVorher: 21},
	}}
	svc := newExamService(repo)

	active, err := svc.List(context.Background(), "alice", ExamViewActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Sorted by date, but the index keeps the stored position.
	assert.Equal(t, "Mathe", active[0].Exam.Fach)
	assert.Equal(t, 1, active[0].Index)
	assert.Equal(t, "Bio", active[1].Exam.Fach)
	assert.Equal(t, 0, active[1].Index)

	archive, err := svc.List(context.Background(), "alice", ExamViewArchive)
	require.NoError(t, err)
	require.Len(t, archive, 1)
	assert.Equal(t, "Latein", archive[0].Exam.Fach)
	require.NotNil(t, archive[0].Passed)
	assert.True(t, *archive[0].Passed)
}

func TestExamServiceListRejectsUnknownView(t *testing.T) {
	svc := newExamService(&mockExamRepo{})
	_, err := svc.List(context.Background(), "alice", "trash")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExamServiceUpdateRefusesArchived(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Latein", Archiviert: true, TageVorher: 21}}}
	svc := newExamService(repo)

	ziel := 30.0
	_, err := svc.Update(context.Background(), "alice", 0, dto.UpdateExamRequest{ZielStunden: &ziel})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrArchived.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.replaced)
}

func TestExamServiceArchiveIsOneWay(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21}}}
	svc := newExamService(repo)

	require.NoError(t, svc.Archive(context.Background(), "alice", 0))
	assert.True(t, repo.exams[0].Archiviert)

	err := svc.Archive(context.Background(), "alice", 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrArchived.Code, appErrors.FromError(err).Code)
}

func TestExamServiceGradeRequiresArchive(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21}}}
	svc := newExamService(repo)

	_, err := svc.SetGrade(context.Background(), "alice", 0, dto.GradeExamRequest{Note: 12})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotArchived.Code, appErrors.FromError(err).Code)

	repo.exams[0].Archiviert = true
	view, err := svc.SetGrade(context.Background(), "alice", 0, dto.GradeExamRequest{Note: 12})
	require.NoError(t, err)
	assert.Equal(t, "12", view.Exam.Note)
	require.NotNil(t, view.Passed)
	assert.True(t, *view.Passed)
}

func TestExamServiceGradeFourIsFailed(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Mathe", Archiviert: true, TageVorher: 21}}}
	svc := newExamService(repo)

	view, err := svc.SetGrade(context.Background(), "alice", 0, dto.GradeExamRequest{Note: 4})
	require.NoError(t, err)
	require.NotNil(t, view.Passed)
	assert.False(t, *view.Passed)
}

func TestExamServiceDeleteOnlyArchived(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{
		{Fach: "Mathe", TageVorher: 21},
		{Fach: "Latein", Archiviert: true, TageVorher: 21},
	}}
	svc := newExamService(repo)

	err := svc.Delete(context.Background(), "alice", 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotArchived.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.Delete(context.Background(), "alice", 1))
	require.Len(t, repo.exams, 1)
	assert.Equal(t, "Mathe", repo.exams[0].Fach)
}

func TestExamServiceDeleteOutOfRange(t *testing.T) {
	svc := newExamService(&mockExamRepo{})
	err := svc.Delete(context.Background(), "alice", 3)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExamServiceCreditStudyTime(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Mathe", TageVorher: 21, GelerntStunden: 1.0}}}
	svc := newExamService(repo)

	exam, err := svc.CreditStudyTime(context.Background(), "alice", 0, 25)
	require.NoError(t, err)
	assert.InDelta(t, 1.0+25.0/60.0, exam.GelerntStunden, 0.0001)
	assert.InDelta(t, exam.GelerntStunden, repo.exams[0].GelerntStunden, 0.0001)
}

func TestExamServiceCreditRefusesArchived(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Latein", Archiviert: true, TageVorher: 21}}}
	svc := newExamService(repo)

	_, err := svc.CreditStudyTime(context.Background(), "alice", 0, 25)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrArchived.Code, appErrors.FromError(err).Code)
}

func TestExamServiceCreditSurfacesStorageError(t *testing.T) {
	repo := &mockExamRepo{listErr: errors.New("disk gone")}
	svc := newExamService(repo)

	_, err := svc.CreditStudyTime(context.Background(), "alice", 0, 25)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestExamServiceExportCSV(t *testing.T) {
	repo := &mockExamRepo{exams: []models.Exam{{Fach: "Mathe", Datum: models.ParseDate("2026-10-01"), TageVorher: 21}}}
	svc := newExamService(repo)

	payload, contentType, err := svc.Export(context.Background(), "alice", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "Mathe")
	assert.Contains(t, string(payload), "2026-10-01")
}
