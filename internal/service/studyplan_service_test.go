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

type mockStudyPlanRepo struct {
	entries []models.StudyPlanEntry
}

func (m *mockStudyPlanRepo) List(_ context.Context, _ string) ([]models.StudyPlanEntry, error) {
	out := make([]models.StudyPlanEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *mockStudyPlanRepo) Replace(_ context.Context, _ string, entries []models.StudyPlanEntry) error {
	m.entries = entries
	return nil
}

func TestStudyPlanServiceAddDefaultsPriority(t *testing.T) {
	repo := &mockStudyPlanRepo{}
	svc := NewStudyPlanService(repo, nil, nil)

	view, err := svc.Add(context.Background(), "alice", dto.CreateStudyPlanRequest{Fach: "Mathe", StundenProWoche: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Entry.Prioritaet)
}

func TestStudyPlanServiceAddRejectsBlankSubject(t *testing.T) {
	svc := NewStudyPlanService(&mockStudyPlanRepo{}, nil, nil)

	_, err := svc.Add(context.Background(), "alice", dto.CreateStudyPlanRequest{Fach: "  "})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudyPlanServiceWeekDistribution(t *testing.T) {
	repo := &mockStudyPlanRepo{entries: []models.StudyPlanEntry{
		{Fach: "Mathe", StundenProWoche: 10, Prioritaet: 1},
		{Fach: "Bio", StundenProWoche: 5, Prioritaet: 2},
		{Fach: "Ruht", StundenProWoche: 0, Prioritaet: 3},
	}}
	svc := NewStudyPlanService(repo, nil, nil)

	plan, err := svc.Week(context.Background(), "alice")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, plan.StundenGesamt, 0.001)

	require.Len(t, plan.Verteilung, 7)
	assert.Equal(t, "Montag", plan.Verteilung[0].Tag)
	assert.Equal(t, "Sonntag", plan.Verteilung[6].Tag)

	// 15 hours split evenly over the five weekdays, weekend stays free.
	for _, day := range plan.Verteilung[:5] {
		assert.InDelta(t, 3.0, day.Stunden, 0.001, day.Tag)
	}
	assert.Zero(t, plan.Verteilung[5].Stunden)
	assert.Zero(t, plan.Verteilung[6].Stunden)
}

func TestStudyPlanServiceWeekEmptyPlan(t *testing.T) {
	svc := NewStudyPlanService(&mockStudyPlanRepo{}, nil, nil)

	plan, err := svc.Week(context.Background(), "alice")
	require.NoError(t, err)
	assert.Zero(t, plan.StundenGesamt)
	require.Len(t, plan.Verteilung, 7)
}

func TestStudyPlanServiceUpdateKeepsUntouchedFields(t *testing.T) {
	repo := &mockStudyPlanRepo{entries: []models.StudyPlanEntry{
		{Fach: "Mathe", StundenProWoche: 10, Prioritaet: 1},
	}}
	svc := NewStudyPlanService(repo, nil, nil)

	hours := 12.0
	view, err := svc.Update(context.Background(), "alice", 0, dto.UpdateStudyPlanRequest{StundenProWoche: &hours})
	require.NoError(t, err)
	assert.Equal(t, "Mathe", view.Entry.Fach)
	assert.InDelta(t, 12.0, view.Entry.StundenProWoche, 0.001)
	assert.Equal(t, 1, view.Entry.Prioritaet)
}
