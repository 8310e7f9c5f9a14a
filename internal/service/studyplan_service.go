package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

type studyPlanRepository interface {
	List(ctx context.Context, user string) ([]models.StudyPlanEntry, error)
	Replace(ctx context.Context, user string, entries []models.StudyPlanEntry) error
}

var weekdays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// StudyPlanService manages the weekly study plan and its distribution view.
type StudyPlanService struct {
	repo      studyPlanRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudyPlanService constructs a StudyPlanService instance.
func NewStudyPlanService(repo studyPlanRepository, validate *validator.Validate, logger *zap.Logger) *StudyPlanService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudyPlanService{repo: repo, validator: validate, logger: logger}
}

// List returns all plan entries in insertion order.
func (s *StudyPlanService) List(ctx context.Context, user string) ([]dto.StudyPlanView, error) {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}

	views := make([]dto.StudyPlanView, 0, len(entries))
	for i, entry := range entries {
		views = append(views, dto.StudyPlanView{Index: i, Entry: entry})
	}
	return views, nil
}

// Add appends a subject to the plan. An empty subject name is rejected.
func (s *StudyPlanService) Add(ctx context.Context, user string, req dto.CreateStudyPlanRequest) (*dto.StudyPlanView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study plan payload")
	}
	if strings.TrimSpace(req.Fach) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject name is required")
	}

	prio := req.Prioritaet
	if prio == 0 {
		prio = 2
	}

	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}

	entry := models.StudyPlanEntry{
		Fach:            strings.TrimSpace(req.Fach),
		StundenProWoche: req.StundenProWoche,
		Prioritaet:      prio,
	}
	entries = append(entries, entry)

	if err := s.repo.Replace(ctx, user, entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save study plan")
	}

	return &dto.StudyPlanView{Index: len(entries) - 1, Entry: entry}, nil
}

// Update edits a plan entry in place.
func (s *StudyPlanService) Update(ctx context.Context, user string, index int, req dto.UpdateStudyPlanRequest) (*dto.StudyPlanView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study plan payload")
	}

	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}
	if index < 0 || index >= len(entries) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "study plan entry not found")
	}

	if req.Fach != nil && strings.TrimSpace(*req.Fach) != "" {
		entries[index].Fach = strings.TrimSpace(*req.Fach)
	}
	if req.StundenProWoche != nil {
		entries[index].StundenProWoche = *req.StundenProWoche
	}
	if req.Prioritaet != nil {
		entries[index].Prioritaet = *req.Prioritaet
	}

	if err := s.repo.Replace(ctx, user, entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save study plan")
	}

	return &dto.StudyPlanView{Index: index, Entry: entries[index]}, nil
}

// Delete removes the plan entry at the given list position.
func (s *StudyPlanService) Delete(ctx context.Context, user string, index int) error {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}
	if index < 0 || index >= len(entries) {
		return appErrors.Clone(appErrors.ErrNotFound, "study plan entry not found")
	}

	entries = append(entries[:index], entries[index+1:]...)

	if err := s.repo.Replace(ctx, user, entries); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete study plan entry")
	}
	return nil
}

// Week sums planned hours and suggests an equal Mon–Fri split per subject.
func (s *StudyPlanService) Week(ctx context.Context, user string) (*dto.WeeklyPlan, error) {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load study plan")
	}

	plan := &dto.WeeklyPlan{}
	perDay := make(map[string]float64, len(weekdays))

	for _, entry := range entries {
		plan.StundenGesamt += entry.StundenProWoche
		if entry.StundenProWoche <= 0 {
			continue
		}
		share := entry.StundenProWoche / 5.0
		for _, day := range weekdays[:5] {
			perDay[day] += share
		}
	}

	for _, day := range weekdays {
		plan.Verteilung = append(plan.Verteilung, dto.WeekdayHours{Tag: day, Stunden: perDay[day]})
	}

	return plan, nil
}
