package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// CreateSeminarRequest adds a seminar with up to two date/time slots.
type CreateSeminarRequest struct {
	Titel      string  `json:"titel" validate:"required"`
	Datum      string  `json:"datum" validate:"omitempty,datetime=2006-01-02"`
	Uhrzeit1   string  `json:"uhrzeit1"`
	Datum2     string  `json:"datum2" validate:"omitempty,datetime=2006-01-02"`
	Uhrzeit2   string  `json:"uhrzeit2"`
	Notiz      string  `json:"notiz"`
	Punkte     float64 `json:"punkte" validate:"min=0,max=30"`
	Absolviert bool    `json:"absolviert"`
}

// UpdateSeminarRequest edits an existing seminar. Nil fields stay untouched.
type UpdateSeminarRequest struct {
	Punkte     *float64 `json:"punkte" validate:"omitempty,min=0,max=30"`
	Absolviert *bool    `json:"absolviert"`
	Notiz      *string  `json:"notiz"`
}

// SeminarView is a seminar with its list position.
type SeminarView struct {
	Index   int            `json:"index"`
	Seminar models.Seminar `json:"seminar"`
}

// SeminarTotals summarises credit points across all and completed seminars.
type SeminarTotals struct {
	PunkteGesamt     float64 `json:"punkte_gesamt"`
	PunkteAbsolviert float64 `json:"punkte_absolviert"`
}
