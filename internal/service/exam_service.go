package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/models"
	"github.com/unidash/uni-dashboard-api/internal/risk"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/export"
)

type examRepository interface {
	List(ctx context.Context, user string) ([]models.Exam, error)
	Replace(ctx context.Context, user string, exams []models.Exam) error
}

// ExamViewActive selects unarchived exams, ExamViewArchive the archived ones.
const (
	ExamViewActive  = "active"
	ExamViewArchive = "archive"
)

// ExamService implements the exam lifecycle: add, progress edits, one-way
// archiving, grading, archived-only deletion and study-time credits.
type ExamService struct {
	repo      examRepository
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	now       func() time.Time
}

// NewExamService constructs an ExamService instance.
func NewExamService(repo examRepository, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		now:       time.Now,
	}
}

// List returns the requested view (active or archive) sorted by exam date
// with dateless exams last. The Index of each view is the record's position
// in the stored collection, which is its only identity.
func (s *ExamService) List(ctx context.Context, user, view string) ([]dto.ExamView, error) {
	if view == "" {
		view = ExamViewActive
	}
	if view != ExamViewActive && view != ExamViewArchive {
		return nil, appErrors.Clone(appErrors.ErrValidation, "view must be active or archive")
	}

	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}

	today := s.now()
	views := make([]dto.ExamView, 0, len(exams))
	for i, exam := range exams {
		if exam.Archiviert != (view == ExamViewArchive) {
			continue
		}
		views = append(views, s.buildView(i, exam, today))
	}

	sort.SliceStable(views, func(a, b int) bool {
		return views[a].Exam.Datum.Before(views[b].Exam.Datum)
	})

	return views, nil
}

// Add appends a new exam with zero accumulated hours.
func (s *ExamService) Add(ctx context.Context, user string, req dto.CreateExamRequest) (*dto.ExamView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}

	tageVorher := req.TageVorher
	if tageVorher == 0 {
		tageVorher = 21
	}

	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}

	exam := models.Exam{
		Fach:        req.Fach,
		Datum:       models.ParseDate(req.Datum),
		Lernordner:  req.Lernordner,
		TageVorher:  tageVorher,
		ZielStunden: req.ZielStunden,
	}
	exams = append(exams, exam)

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}

	view := s.buildView(len(exams)-1, exam, s.now())
	return &view, nil
}

// Update edits study-progress fields of an active exam.
func (s *ExamService) Update(ctx context.Context, user string, index int, req dto.UpdateExamRequest) (*dto.ExamView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}

	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	if index < 0 || index >= len(exams) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if exams[index].Archiviert {
		return nil, appErrors.Clone(appErrors.ErrArchived, "archived exams are read-only")
	}

	if req.ZielStunden != nil {
		exams[index].ZielStunden = *req.ZielStunden
	}
	if req.GelerntStunden != nil {
		exams[index].GelerntStunden = *req.GelerntStunden
	}
	if req.TageVorher != nil {
		exams[index].TageVorher = *req.TageVorher
	}
	if req.Lernordner != nil {
		exams[index].Lernordner = *req.Lernordner
	}

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}

	view := s.buildView(index, exams[index], s.now())
	return &view, nil
}

// Archive marks an exam as archived. The transition is one-way.
func (s *ExamService) Archive(ctx context.Context, user string, index int) error {
	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	if index < 0 || index >= len(exams) {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if exams[index].Archiviert {
		return appErrors.Clone(appErrors.ErrArchived, "exam is already archived")
	}

	exams[index].Archiviert = true

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}
	return nil
}

// SetGrade records the final grade of an archived exam on the 0–15 scale.
// Grades above 4 count as passed.
func (s *ExamService) SetGrade(ctx context.Context, user string, index int, req dto.GradeExamRequest) (*dto.ExamView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	if index < 0 || index >= len(exams) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if !exams[index].Archiviert {
		return nil, appErrors.Clone(appErrors.ErrNotArchived, "grades can only be set on archived exams")
	}

	exams[index].Note = strconv.FormatFloat(req.Note, 'f', -1, 64)

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}

	view := s.buildView(index, exams[index], s.now())
	return &view, nil
}

// Delete removes an exam. Only archived exams may be deleted; deletion is
// positional.
func (s *ExamService) Delete(ctx context.Context, user string, index int) error {
	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	if index < 0 || index >= len(exams) {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if !exams[index].Archiviert {
		return appErrors.Clone(appErrors.ErrNotArchived, "only archived exams can be deleted")
	}

	exams = append(exams[:index], exams[index+1:]...)

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exam")
	}
	return nil
}

// CreditStudyTime converts elapsed whole minutes into fractional hours and
// adds them to the exam's accumulated study hours. This is the timer ledger's
// single write path.
func (s *ExamService) CreditStudyTime(ctx context.Context, user string, index, minutes int) (*models.Exam, error) {
	if minutes <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "minutes must be positive")
	}

	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}
	if index < 0 || index >= len(exams) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if exams[index].Archiviert {
		return nil, appErrors.Clone(appErrors.ErrArchived, "cannot credit study time to an archived exam")
	}

	exams[index].GelerntStunden += float64(minutes) / 60.0

	if err := s.repo.Replace(ctx, user, exams); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to credit study time")
	}

	exam := exams[index]
	s.logger.Info("study time credited",
		zap.String("user", user),
		zap.String("fach", exam.Fach),
		zap.Int("minutes", minutes),
		zap.Float64("gelernt_stunden", exam.GelerntStunden))

	return &exam, nil
}

// Export renders all exams as CSV or PDF.
func (s *ExamService) Export(ctx context.Context, user, format string) ([]byte, string, error) {
	exams, err := s.repo.List(ctx, user)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exams")
	}

	data := export.Dataset{
		Headers: []string{"fach", "datum", "tage_vorher", "archiviert", "note", "ziel_stunden", "gelernt_stunden"},
	}
	for _, exam := range exams {
		data.Rows = append(data.Rows, []string{
			exam.Fach,
			exam.Datum.String(),
			strconv.Itoa(exam.TageVorher),
			strconv.FormatBool(exam.Archiviert),
			exam.Note,
			fmt.Sprintf("%.1f", exam.ZielStunden),
			fmt.Sprintf("%.1f", exam.GelerntStunden),
		})
	}

	switch format {
	case "", "csv":
		out, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return out, "text/csv", nil
	case "pdf":
		out, err := s.pdf.Render(data, "Klausuren")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return out, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func (s *ExamService) buildView(index int, exam models.Exam, today time.Time) dto.ExamView {
	category, message := risk.Evaluate(exam, today)
	view := dto.ExamView{
		Index:       index,
		Exam:        exam,
		Risk:        string(category),
		RiskMessage: message,
	}

	if exam.Datum.Valid {
		days := exam.Datum.DaysUntil(today)
		view.DaysUntil = &days
	}
	if exam.ZielStunden > 0 {
		progress := exam.GelerntStunden / exam.ZielStunden
		if progress > 1 {
			progress = 1
		} else if progress < 0 {
			progress = 0
		}
		view.Progress = &progress
	}
	if exam.Archiviert && exam.Note != "" {
		if note, err := strconv.ParseFloat(exam.Note, 64); err == nil {
			passed := note > 4
			view.Passed = &passed
		}
	}

	return view
}
