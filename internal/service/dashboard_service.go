package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
)

type overviewExamLister interface {
	List(ctx context.Context, user, view string) ([]dto.ExamView, error)
}

type overviewTodoLister interface {
	OpenSorted(ctx context.Context, user string, limit int) ([]dto.TodoView, error)
}

type overviewSeminarLister interface {
	List(ctx context.Context, user string) ([]dto.SeminarView, *dto.SeminarTotals, error)
}

type overviewMoodLister interface {
	History(ctx context.Context, user string, days int) (*dto.MoodHistory, error)
}

const (
	overviewExamLimit = 3
	overviewTodoLimit = 5
)

// DashboardService composes the day overview from every collection. A Redis
// cache in front is optional; a nil client disables it and every cache
// failure falls through to a fresh build.
type DashboardService struct {
	exams    overviewExamLister
	todos    overviewTodoLister
	seminars overviewSeminarLister
	mood     overviewMoodLister
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(exams overviewExamLister, todos overviewTodoLister, seminars overviewSeminarLister, mood overviewMoodLister, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		exams:    exams,
		todos:    todos,
		seminars: seminars,
		mood:     mood,
		logger:   logger,
		now:      time.Now,
	}
}

// EnableCache turns on the Redis-backed overview cache.
func (s *DashboardService) EnableCache(client *redis.Client, ttl time.Duration) {
	s.cache = client
	s.cacheTTL = ttl
}

// InvalidateCache drops the cached overview for a user. Called after writes.
func (s *DashboardService) InvalidateCache(ctx context.Context, user string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, overviewCacheKey(user)).Err(); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

// Overview builds the day overview for a user.
func (s *DashboardService) Overview(ctx context.Context, user string) (*dto.OverviewResponse, error) {
	if cached := s.fromCache(ctx, user); cached != nil {
		return cached, nil
	}

	now := s.now()
	overview := &dto.OverviewResponse{
		Today:    now.Format(models.ISODate),
		Greeting: greeting(now),
	}

	examViews, err := s.exams.List(ctx, user, ExamViewActive)
	if err != nil {
		return nil, err
	}
	for _, view := range examViews {
		if view.DaysUntil == nil || *view.DaysUntil < 0 {
			continue
		}
		overview.UpcomingExams = append(overview.UpcomingExams, dto.UpcomingExam{
			Fach:        view.Exam.Fach,
			Datum:       view.Exam.Datum.String(),
			DaysUntil:   *view.DaysUntil,
			Risk:        view.Risk,
			RiskMessage: view.RiskMessage,
		})
		if len(overview.UpcomingExams) == overviewExamLimit {
			break
		}
	}

	overview.ImportantTodos, err = s.todos.OpenSorted(ctx, user, overviewTodoLimit)
	if err != nil {
		return nil, err
	}

	seminarViews, _, err := s.seminars.List(ctx, user)
	if err != nil {
		return nil, err
	}
	today := models.NewDate(now)
	for i := range seminarViews {
		view := seminarViews[i]
		if view.Seminar.Datum.Equal(today) {
			overview.SeminarsToday = append(overview.SeminarsToday, view)
			continue
		}
		if overview.NextSeminar == nil && view.Seminar.Datum.Valid && today.Before(view.Seminar.Datum) {
			overview.NextSeminar = &seminarViews[i]
		}
	}

	history, err := s.mood.History(ctx, user, DefaultMoodHistoryDays)
	if err != nil {
		return nil, err
	}
	overview.LatestMood = history.Latest
	overview.MoodAdvice = history.Advice

	s.toCache(ctx, user, overview)
	return overview, nil
}

func (s *DashboardService) fromCache(ctx context.Context, user string) *dto.OverviewResponse {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, overviewCacheKey(user)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil
	}
	overview := &dto.OverviewResponse{}
	if err := json.Unmarshal(payload, overview); err != nil {
		return nil
	}
	return overview
}

func (s *DashboardService) toCache(ctx context.Context, user string, overview *dto.OverviewResponse) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, overviewCacheKey(user), payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}

func overviewCacheKey(user string) string {
	return fmt.Sprintf("dash:overview:%s", user)
}

func greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 11:
		return "Guten Morgen"
	case hour < 17:
		return "Guten Tag"
	default:
		return "Guten Abend"
	}
}
