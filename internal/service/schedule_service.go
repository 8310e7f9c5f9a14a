package service

import (
	"context"

	"go.uber.org/zap"

	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type scheduleRepository interface {
	Get(ctx context.Context, user string) (string, error)
	Set(ctx context.Context, user, blob string) error
}

// ScheduleService stores and serves the timetable HTML blob verbatim. The
// server never parses or sanitizes it.
type ScheduleService struct {
	repo   scheduleRepository
	logger *zap.Logger
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(repo scheduleRepository, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, logger: logger}
}

// Get returns the stored blob. An empty string means none was uploaded yet.
func (s *ScheduleService) Get(ctx context.Context, user string) (string, error) {
	blob, err := s.repo.Get(ctx, user)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	return blob, nil
}

// Set replaces the stored blob. An empty string clears it.
func (s *ScheduleService) Set(ctx context.Context, user, blob string) error {
	if err := s.repo.Set(ctx, user, blob); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	return nil
}
