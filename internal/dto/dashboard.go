package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// UpcomingExam is a dashboard card for one exam ahead of today.
type UpcomingExam struct {
	Fach        string `json:"fach"`
	Datum       string `json:"datum"`
	DaysUntil   int    `json:"days_until"`
	Risk        string `json:"risk"`
	RiskMessage string `json:"risk_message"`
}

// OverviewResponse is the day overview composed from all collections.
type OverviewResponse struct {
	Today          string            `json:"today"`
	Greeting       string            `json:"greeting"`
	UpcomingExams  []UpcomingExam    `json:"upcoming_exams"`
	ImportantTodos []TodoView        `json:"important_todos"`
	SeminarsToday  []SeminarView     `json:"seminars_today"`
	NextSeminar    *SeminarView      `json:"next_seminar,omitempty"`
	LatestMood     *models.MoodEntry `json:"latest_mood,omitempty"`
	MoodAdvice     string            `json:"mood_advice,omitempty"`
}
