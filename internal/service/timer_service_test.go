package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/pkg/config"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type mockCreditor struct {
	calls   int
	minutes int
	err     error
}

func (m *mockCreditor) CreditStudyTime(_ context.Context, _ string, _, minutes int) (*models.Exam, error) {
	m.calls++
	m.minutes += minutes
	if m.err != nil {
		return nil, m.err
	}
	return &models.Exam{Fach: "Mathe", GelerntStunden: float64(m.minutes) / 60.0}, nil
}

func testTimerConfig() config.TimerConfig {
	return config.TimerConfig{
		DefaultLearnMinutes: 25,
		DefaultBreakMinutes: 5,
		MaxLearnMinutes:     180,
		MaxBreakMinutes:     60,
	}
}

func newTimerService(creditor *mockCreditor) (*TimerService, *time.Time) {
	svc := NewTimerService(creditor, testTimerConfig(), nil)
	current := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }
	return svc, &current
}

func TestTimerStatusIdleWithoutSession(t *testing.T) {
	svc, _ := newTimerService(&mockCreditor{})

	status, err := svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateIdle), status.State)
}

func TestTimerStartUsesConfiguredDefaults(t *testing.T) {
	svc, _ := newTimerService(&mockCreditor{})

	status, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase"})
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateRunning), status.State)
	assert.Equal(t, 25*60, status.RemainingSeconds)
}

func TestTimerStartRejectsOutOfRangeMinutes(t *testing.T) {
	svc, _ := newTimerService(&mockCreditor{})

	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 3})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "pause", Minutes: 90})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimerStartRejectsExamLinkedBreak(t *testing.T) {
	svc, _ := newTimerService(&mockCreditor{})

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "pause", Minutes: 5, ExamIndex: &index})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimerCreditsExactlyOnce(t *testing.T) {
	creditor := &mockCreditor{}
	svc, current := newTimerService(creditor)

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25, ExamIndex: &index})
	require.NoError(t, err)

	*current = current.Add(26 * time.Minute)

	status, err := svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateExpired), status.State)
	require.NotNil(t, status.CreditedHours)
	assert.InDelta(t, 25.0/60.0, *status.CreditedHours, 0.0001)
	assert.Equal(t, "Mathe", status.CreditedFach)
	assert.Equal(t, 1, creditor.calls)

	// A second observation reports expiry but must not credit again.
	status, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateExpired), status.State)
	assert.Nil(t, status.CreditedHours)
	assert.Equal(t, 1, creditor.calls)
}

func TestTimerBreakNeverCredits(t *testing.T) {
	creditor := &mockCreditor{}
	svc, current := newTimerService(creditor)

	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "pause", Minutes: 5})
	require.NoError(t, err)

	*current = current.Add(10 * time.Minute)

	status, err := svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateExpired), status.State)
	assert.Zero(t, creditor.calls)
}

func TestTimerUnlinkedLearnPhaseNeverCredits(t *testing.T) {
	creditor := &mockCreditor{}
	svc, current := newTimerService(creditor)

	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25})
	require.NoError(t, err)

	*current = current.Add(30 * time.Minute)

	_, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Zero(t, creditor.calls)
}

func TestTimerCreditRetriesAfterStorageError(t *testing.T) {
	creditor := &mockCreditor{err: appErrors.Clone(appErrors.ErrInternal, "disk gone")}
	svc, current := newTimerService(creditor)

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25, ExamIndex: &index})
	require.NoError(t, err)

	*current = current.Add(26 * time.Minute)

	status, err := svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, status.CreditedHours)
	assert.Equal(t, 1, creditor.calls)

	creditor.err = nil
	status, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, status.CreditedHours)
	assert.Equal(t, 2, creditor.calls)
}

func TestTimerCreditDoesNotRetryDomainRejection(t *testing.T) {
	creditor := &mockCreditor{err: appErrors.Clone(appErrors.ErrArchived, "archived")}
	svc, current := newTimerService(creditor)

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25, ExamIndex: &index})
	require.NoError(t, err)

	*current = current.Add(26 * time.Minute)

	_, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	_, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, creditor.calls)
}

func TestTimerResetDiscardsSession(t *testing.T) {
	creditor := &mockCreditor{}
	svc, current := newTimerService(creditor)

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25, ExamIndex: &index})
	require.NoError(t, err)

	status := svc.Reset(context.Background(), "alice")
	assert.Equal(t, string(models.TimerStateIdle), status.State)

	*current = current.Add(time.Hour)
	status, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateIdle), status.State)
	assert.Zero(t, creditor.calls)
}

func TestTimerCreditHookFires(t *testing.T) {
	creditor := &mockCreditor{}
	svc, current := newTimerService(creditor)

	var hookMinutes int
	svc.SetCreditHook(func(minutes int) { hookMinutes += minutes })

	index := 0
	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 30, ExamIndex: &index})
	require.NoError(t, err)

	*current = current.Add(31 * time.Minute)
	_, err = svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 30, hookMinutes)
}

func TestTimerStartWhileRunningConflicts(t *testing.T) {
	svc, _ := newTimerService(&mockCreditor{})

	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25})
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "pause", Minutes: 5})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTimerState.Code, appErrors.FromError(err).Code)

	status, err := svc.Status(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerModeLearn), status.Mode)
}

func TestTimerStartAfterResetOrExpiry(t *testing.T) {
	svc, current := newTimerService(&mockCreditor{})

	_, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25})
	require.NoError(t, err)

	svc.Reset(context.Background(), "alice")
	_, err = svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "lernphase", Minutes: 25})
	require.NoError(t, err)

	*current = current.Add(26 * time.Minute)
	status, err := svc.Start(context.Background(), "alice", dto.StartTimerRequest{Mode: "pause", Minutes: 5})
	require.NoError(t, err)
	assert.Equal(t, string(models.TimerStateRunning), status.State)
	assert.Equal(t, string(models.TimerModeBreak), status.Mode)
}
