package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// CreateExamRequest adds a new exam. New exams start with zero accumulated
// hours, unarchived and ungraded.
type CreateExamRequest struct {
	Fach        string  `json:"fach" validate:"required"`
	Datum       string  `json:"datum" validate:"omitempty,datetime=2006-01-02"`
	Lernordner  string  `json:"lernordner"`
	TageVorher  int     `json:"tage_vorher" validate:"omitempty,min=1,max=180"`
	ZielStunden float64 `json:"ziel_stunden" validate:"min=0,max=500"`
}

// UpdateExamRequest edits the study-progress fields of an active exam.
// Nil fields are left untouched.
type UpdateExamRequest struct {
	ZielStunden    *float64 `json:"ziel_stunden" validate:"omitempty,min=0,max=500"`
	GelerntStunden *float64 `json:"gelernt_stunden" validate:"omitempty,min=0,max=500"`
	TageVorher     *int     `json:"tage_vorher" validate:"omitempty,min=1,max=180"`
	Lernordner     *string  `json:"lernordner"`
}

// GradeExamRequest records the final grade of an archived exam (0–15 scale).
type GradeExamRequest struct {
	Note float64 `json:"note" validate:"min=0,max=15"`
}

// ExamView is an exam record annotated with its risk standing.
type ExamView struct {
	Index       int         `json:"index"`
	Exam        models.Exam `json:"exam"`
	DaysUntil   *int        `json:"days_until,omitempty"`
	Progress    *float64    `json:"progress,omitempty"`
	Risk        string      `json:"risk"`
	RiskMessage string      `json:"risk_message"`
	Passed      *bool       `json:"passed,omitempty"`
}
