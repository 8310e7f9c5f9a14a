package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/export"
)

type moodRepository interface {
	List(ctx context.Context, user string) ([]models.MoodEntry, error)
	Replace(ctx context.Context, user string, entries []models.MoodEntry) error
}

// DefaultMoodHistoryDays is the trailing window for the trend view.
const DefaultMoodHistoryDays = 14

// MoodService manages the mood log and derives the wellbeing advice shown on
// the dashboard.
type MoodService struct {
	repo      moodRepository
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	now       func() time.Time
}

// NewMoodService constructs a MoodService instance.
func NewMoodService(repo moodRepository, validate *validator.Validate, logger *zap.Logger) *MoodService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		now:       time.Now,
	}
}

// List returns all mood entries in insertion order.
func (s *MoodService) List(ctx context.Context, user string) ([]dto.MoodView, error) {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mood log")
	}

	views := make([]dto.MoodView, 0, len(entries))
	for i, entry := range entries {
		views = append(views, dto.MoodView{Index: i, Entry: entry})
	}
	return views, nil
}

// Add appends a mood entry. An omitted date means today.
func (s *MoodService) Add(ctx context.Context, user string, req dto.CreateMoodRequest) (*dto.MoodView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mood payload")
	}

	datum := models.ParseDate(req.Datum)
	if !datum.Valid {
		datum = models.NewDate(s.now())
	}

	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mood log")
	}

	entry := models.MoodEntry{
		Datum:    datum,
		Stimmung: req.Stimmung,
		Stress:   req.Stress,
		Schlaf:   req.Schlaf,
		Notiz:    req.Notiz,
	}
	entries = append(entries, entry)

	if err := s.repo.Replace(ctx, user, entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save mood log")
	}

	return &dto.MoodView{Index: len(entries) - 1, Entry: entry}, nil
}

// Delete removes the mood entry at the given list position.
func (s *MoodService) Delete(ctx context.Context, user string, index int) error {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mood log")
	}
	if index < 0 || index >= len(entries) {
		return appErrors.Clone(appErrors.ErrNotFound, "mood entry not found")
	}

	entries = append(entries[:index], entries[index+1:]...)

	if err := s.repo.Replace(ctx, user, entries); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete mood entry")
	}
	return nil
}

// History returns entries from the trailing window, newest last, along with
// the latest entry and its advice.
func (s *MoodService) History(ctx context.Context, user string, days int) (*dto.MoodHistory, error) {
	if days <= 0 {
		days = DefaultMoodHistoryDays
	}

	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mood log")
	}

	cutoff := models.NewDate(s.now().AddDate(0, 0, -days))
	history := &dto.MoodHistory{Days: days, Entries: []dto.MoodView{}}

	for i, entry := range entries {
		if entry.Datum.Valid && entry.Datum.Before(cutoff) {
			continue
		}
		history.Entries = append(history.Entries, dto.MoodView{Index: i, Entry: entry})
	}

	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		history.Latest = &latest
		history.Advice = MoodAdvice(latest)
	}

	return history, nil
}

// ExportCSV renders the full mood log as a CSV download.
func (s *MoodService) ExportCSV(ctx context.Context, user string) ([]byte, error) {
	entries, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mood log")
	}

	dataset := export.Dataset{
		Headers: []string{"Datum", "Stimmung", "Stress", "Schlaf", "Notiz"},
	}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, []string{
			entry.Datum.String(),
			strconv.Itoa(entry.Stimmung),
			strconv.Itoa(entry.Stress),
			strconv.FormatFloat(entry.Schlaf, 'f', -1, 64),
			entry.Notiz,
		})
	}

	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("failed to export mood log for %s", user))
	}
	return payload, nil
}

// MoodAdvice maps the latest entry onto a short German wellbeing hint. High
// stress combined with little sleep wins over every other signal.
func MoodAdvice(entry models.MoodEntry) string {
	switch {
	case entry.Stress >= 8 && entry.Schlaf <= 5:
		return "Sehr hoher Stress und wenig Schlaf – Risiko für schlechte Lernleistung. 👉 Versuche heute bewusst Pausen zu machen, Handy wegzulegen und früher zu schlafen."
	case entry.Stress >= 7:
		return "Dein Stresslevel ist aktuell hoch. 👉 Plane kleine Pausen ein, geh kurz an die frische Luft oder mach 5 Minuten Stretching."
	case entry.Stimmung <= 4:
		return "Deine Stimmung ist etwas im Keller. 👉 Vielleicht hilft dir ein Spaziergang, Musik oder ein Gespräch mit Freunden."
	default:
		return "Alles im grünen Bereich – gute Voraussetzungen fürs Lernen! 💪"
	}
}
