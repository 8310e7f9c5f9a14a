package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type mockSeminarRepo struct {
	seminars []models.Seminar
}

func (m *mockSeminarRepo) List(_ context.Context, _ string) ([]models.Seminar, error) {
	out := make([]models.Seminar, len(m.seminars))
	copy(out, m.seminars)
	return out, nil
}

func (m *mockSeminarRepo) Replace(_ context.Context, _ string, seminars []models.Seminar) error {
	m.seminars = seminars
	return nil
}

func TestSeminarServiceListTotalsAndOrder(t *testing.T) {
	repo := &mockSeminarRepo{seminars: []models.Seminar{
		{Titel: "Ohne Datum", Punkte: 1},
		{Titel: "Später", Datum: models.ParseDate("2026-11-01"), Punkte: 2, Absolviert: true},
		{Titel: "Früher", Datum: models.ParseDate("2026-09-10"), Punkte: 3},
	}}
	svc := NewSeminarService(repo, nil, nil)

	views, totals, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Früher", views[0].Seminar.Titel)
	assert.Equal(t, "Später", views[1].Seminar.Titel)
	assert.Equal(t, "Ohne Datum", views[2].Seminar.Titel)

	assert.InDelta(t, 6.0, totals.PunkteGesamt, 0.001)
	assert.InDelta(t, 2.0, totals.PunkteAbsolviert, 0.001)
}

func TestSeminarServiceAddRejectsBlankTitle(t *testing.T) {
	svc := NewSeminarService(&mockSeminarRepo{}, nil, nil)

	_, err := svc.Add(context.Background(), "alice", dto.CreateSeminarRequest{Titel: " "})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSeminarServiceUpdateMarksCompleted(t *testing.T) {
	repo := &mockSeminarRepo{seminars: []models.Seminar{{Titel: "Erste Hilfe", Punkte: 2}}}
	svc := NewSeminarService(repo, nil, nil)

	absolviert := true
	view, err := svc.Update(context.Background(), "alice", 0, dto.UpdateSeminarRequest{Absolviert: &absolviert})
	require.NoError(t, err)
	assert.True(t, view.Seminar.Absolviert)

	_, totals, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, totals.PunkteAbsolviert, 0.001)
}

func TestSeminarServiceDeleteOutOfRange(t *testing.T) {
	svc := NewSeminarService(&mockSeminarRepo{}, nil, nil)

	err := svc.Delete(context.Background(), "alice", 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
