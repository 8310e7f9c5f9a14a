package dto

import "github.com/unidash/uni-dashboard-api/internal/models"

// CreateStudyPlanRequest adds a subject to the weekly study plan.
type CreateStudyPlanRequest struct {
	Fach            string  `json:"fach" validate:"required"`
	StundenProWoche float64 `json:"stunden_pro_woche" validate:"min=0,max=50"`
	Prioritaet      int     `json:"priorität" validate:"omitempty,oneof=1 2 3"`
}

// UpdateStudyPlanRequest edits a plan entry. Nil fields stay untouched.
type UpdateStudyPlanRequest struct {
	Fach            *string  `json:"fach"`
	StundenProWoche *float64 `json:"stunden_pro_woche" validate:"omitempty,min=0,max=50"`
	Prioritaet      *int     `json:"priorität" validate:"omitempty,oneof=1 2 3"`
}

// StudyPlanView is a plan entry with its list position.
type StudyPlanView struct {
	Index int                   `json:"index"`
	Entry models.StudyPlanEntry `json:"entry"`
}

// WeekdayHours is one day of the suggested weekly distribution.
type WeekdayHours struct {
	Tag     string  `json:"tag"`
	Stunden float64 `json:"stunden"`
}

// WeeklyPlan is the planned total plus the Mon–Fri split suggestion.
type WeeklyPlan struct {
	StundenGesamt float64        `json:"stunden_gesamt"`
	Verteilung    []WeekdayHours `json:"verteilung"`
}
