package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// CreateMoodRequest appends one mood log entry.
type CreateMoodRequest struct {
	Datum    string  `json:"datum" validate:"omitempty,datetime=2006-01-02"`
	Stimmung int     `json:"stimmung" validate:"min=1,max=10"`
	Stress   int     `json:"stress" validate:"min=1,max=10"`
	Schlaf   float64 `json:"schlaf" validate:"min=0,max=12"`
	Notiz    string  `json:"notiz"`
}

// MoodView is a mood entry with its list position.
type MoodView struct {
	Index int              `json:"index"`
	Entry models.MoodEntry `json:"entry"`
}

// MoodHistory covers the trailing window used for the trend view.
type MoodHistory struct {
	Days    int              `json:"days"`
	Entries []MoodView       `json:"entries"`
	Latest  *models.MoodEntry `json:"latest,omitempty"`
	Advice  string           `json:"advice,omitempty"`
}
