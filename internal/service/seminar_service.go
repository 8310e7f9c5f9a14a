package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type seminarRepository interface {
	List(ctx context.Context, user string) ([]models.Seminar, error)
	Replace(ctx context.Context, user string, seminars []models.Seminar) error
}

// SeminarService manages seminars and their credit-point totals.
type SeminarService struct {
	repo      seminarRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSeminarService constructs a SeminarService instance.
func NewSeminarService(repo seminarRepository, validate *validator.Validate, logger *zap.Logger) *SeminarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeminarService{repo: repo, validator: validate, logger: logger}
}

// List returns seminars sorted by first date, dateless last, plus totals.
func (s *SeminarService) List(ctx context.Context, user string) ([]dto.SeminarView, *dto.SeminarTotals, error) {
	seminars, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load seminars")
	}

	views := make([]dto.SeminarView, 0, len(seminars))
	totals := &dto.SeminarTotals{}
	for i, sem := range seminars {
		views = append(views, dto.SeminarView{Index: i, Seminar: sem})
		totals.PunkteGesamt += sem.Punkte
		if sem.Absolviert {
			totals.PunkteAbsolviert += sem.Punkte
		}
	}

	sort.SliceStable(views, func(a, b int) bool {
		return views[a].Seminar.Datum.Before(views[b].Seminar.Datum)
	})

	return views, totals, nil
}

// Add appends a new seminar. An empty title is rejected before persistence.
func (s *SeminarService) Add(ctx context.Context, user string, req dto.CreateSeminarRequest) (*dto.SeminarView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seminar payload")
	}
	if strings.TrimSpace(req.Titel) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "seminar title is required")
	}

	seminars, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load seminars")
	}

	seminar := models.Seminar{
		Titel:      strings.TrimSpace(req.Titel),
		Datum:      models.ParseDate(req.Datum),
		Uhrzeit1:   strings.TrimSpace(req.Uhrzeit1),
		Datum2:     models.ParseDate(req.Datum2),
		Uhrzeit2:   strings.TrimSpace(req.Uhrzeit2),
		Notiz:      req.Notiz,
		Punkte:     req.Punkte,
		Absolviert: req.Absolviert,
	}
	seminars = append(seminars, seminar)

	if err := s.repo.Replace(ctx, user, seminars); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save seminar")
	}

	return &dto.SeminarView{Index: len(seminars) - 1, Seminar: seminar}, nil
}

// Update edits points, completion state and notes of an existing seminar.
func (s *SeminarService) Update(ctx context.Context, user string, index int, req dto.UpdateSeminarRequest) (*dto.SeminarView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seminar payload")
	}

	seminars, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load seminars")
	}
	if index < 0 || index >= len(seminars) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "seminar not found")
	}

	if req.Punkte != nil {
		seminars[index].Punkte = *req.Punkte
	}
	if req.Absolviert != nil {
		seminars[index].Absolviert = *req.Absolviert
	}
	if req.Notiz != nil {
		seminars[index].Notiz = *req.Notiz
	}

	if err := s.repo.Replace(ctx, user, seminars); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save seminar")
	}

	return &dto.SeminarView{Index: index, Seminar: seminars[index]}, nil
}

// Delete removes the seminar at the given list position.
func (s *SeminarService) Delete(ctx context.Context, user string, index int) error {
	seminars, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load seminars")
	}
	if index < 0 || index >= len(seminars) {
		return appErrors.Clone(appErrors.ErrNotFound, "seminar not found")
	}

	seminars = append(seminars[:index], seminars[index+1:]...)

	if err := s.repo.Replace(ctx, user, seminars); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete seminar")
	}
	return nil
}
