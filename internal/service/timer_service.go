package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/pkg/config"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type studyTimeCreditor interface {
	CreditStudyTime(ctx context.Context, user string, index, minutes int) (*models.Exam, error)
}

// TimerService runs one in-memory session timer per user. The timer is re-
// evaluated against the wall clock on every status request; nothing runs in
// the background. Learning phases linked to an exam credit their minutes as
// study hours exactly once after expiry.
type TimerService struct {
	exams  studyTimeCreditor
	cfg    config.TimerConfig
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*models.TimerSession

	onCredit func(minutes int)
}

// NewTimerService constructs a TimerService instance.
func NewTimerService(exams studyTimeCreditor, cfg config.TimerConfig, logger *zap.Logger) *TimerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimerService{
		exams:    exams,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*models.TimerSession),
	}
}

// SetCreditHook registers a callback fired after each successful credit.
func (s *TimerService) SetCreditHook(fn func(minutes int)) {
	s.onCredit = fn
}

// Start begins a new session. A still-running session must be reset first;
// an expired or absent one is replaced. Omitted minutes fall back to the
// configured defaults; out-of-range values are rejected.
func (s *TimerService) Start(ctx context.Context, user string, req dto.StartTimerRequest) (*dto.TimerStatus, error) {
	mode := models.TimerMode(req.Mode)

	minutes := req.Minutes
	if minutes == 0 {
		switch mode {
		case models.TimerModeLearn:
			minutes = s.cfg.DefaultLearnMinutes
		case models.TimerModeBreak:
			minutes = s.cfg.DefaultBreakMinutes
		}
	}

	switch mode {
	case models.TimerModeLearn:
		if minutes < 5 || minutes > s.cfg.MaxLearnMinutes {
			return nil, appErrors.Clone(appErrors.ErrValidation, "learning phases run between 5 and 180 minutes")
		}
	case models.TimerModeBreak:
		if minutes < 1 || minutes > s.cfg.MaxBreakMinutes {
			return nil, appErrors.Clone(appErrors.ErrValidation, "breaks run between 1 and 60 minutes")
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown timer mode")
	}

	if req.ExamIndex != nil && mode != models.TimerModeLearn {
		return nil, appErrors.Clone(appErrors.ErrValidation, "only learning phases can be linked to an exam")
	}

	session := &models.TimerSession{
		ID:        uuid.NewString(),
		Mode:      mode,
		StartedAt: s.now(),
		Duration:  time.Duration(minutes) * time.Minute,
		ExamIndex: req.ExamIndex,
	}

	s.mu.Lock()
	if existing := s.sessions[user]; existing != nil && s.now().Sub(existing.StartedAt) < existing.Duration {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrTimerState, "a timer is already running, reset it first")
	}
	s.sessions[user] = session
	s.mu.Unlock()

	s.logger.Info("timer started",
		zap.String("user", user),
		zap.String("mode", string(mode)),
		zap.Int("minutes", minutes))

	return s.snapshot(ctx, user, session), nil
}

// Status reports the session as of now. The first status call that observes
// an expired, exam-linked learning phase performs the study-time credit.
func (s *TimerService) Status(ctx context.Context, user string) (*dto.TimerStatus, error) {
	s.mu.Lock()
	session := s.sessions[user]
	s.mu.Unlock()

	if session == nil {
		return &dto.TimerStatus{State: string(models.TimerStateIdle)}, nil
	}
	return s.snapshot(ctx, user, session), nil
}

// Reset discards the session without crediting anything.
func (s *TimerService) Reset(ctx context.Context, user string) *dto.TimerStatus {
	s.mu.Lock()
	delete(s.sessions, user)
	s.mu.Unlock()

	return &dto.TimerStatus{State: string(models.TimerStateIdle)}
}

func (s *TimerService) snapshot(ctx context.Context, user string, session *models.TimerSession) *dto.TimerStatus {
	elapsed := s.now().Sub(session.StartedAt)

	if elapsed < session.Duration {
		remaining := session.Duration - elapsed
		return &dto.TimerStatus{
			State:            string(models.TimerStateRunning),
			Mode:             string(session.Mode),
			RemainingSeconds: int(remaining.Round(time.Second).Seconds()),
			Progress:         clamp01(elapsed.Seconds() / session.Duration.Seconds()),
			ExamIndex:        session.ExamIndex,
		}
	}

	status := &dto.TimerStatus{
		State:     string(models.TimerStateExpired),
		Mode:      string(session.Mode),
		Progress:  1,
		ExamIndex: session.ExamIndex,
	}

	if session.Mode == models.TimerModeLearn && session.ExamIndex != nil {
		s.credit(ctx, user, session, status)
	}
	return status
}

// credit applies the exactly-once study-time credit. Domain rejections mark
// the session credited so they are not retried; I/O failures leave the flag
// unset and the next status call tries again.
func (s *TimerService) credit(ctx context.Context, user string, session *models.TimerSession, status *dto.TimerStatus) {
	s.mu.Lock()
	if session.Credited {
		s.mu.Unlock()
		return
	}
	session.Credited = true
	s.mu.Unlock()

	minutes := int(session.Duration.Minutes())
	exam, err := s.exams.CreditStudyTime(ctx, user, *session.ExamIndex, minutes)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrInternal.Code {
			s.mu.Lock()
			session.Credited = false
			s.mu.Unlock()
		}
		s.logger.Warn("study time credit failed",
			zap.String("user", user),
			zap.Int("exam_index", *session.ExamIndex),
			zap.Error(err))
		return
	}

	hours := float64(minutes) / 60.0
	status.CreditedHours = &hours
	status.CreditedFach = exam.Fach

	if s.onCredit != nil {
		s.onCredit(minutes)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
