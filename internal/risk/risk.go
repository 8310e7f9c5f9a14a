// Package risk grades study progress for an exam against a linear ramp over
// the planning window.
package risk

import (
	"time"

	"github.com/unidash/uni-dashboard-api/internal/models"
)

// Category is the discrete study-progress standing of an exam.
type Category string

const (
	CategoryUnknown Category = "unbekannt"
	CategoryPast    Category = "vorbei"
	CategoryToday   Category = "heute"
	CategoryGreen   Category = "grün"
	CategoryYellow  Category = "gelb"
	CategoryRed     Category = "rot"
)

// Evaluate computes the risk category and advisory message for an exam as of
// today. Expected progress ramps linearly from 0 at the start of the
// tage_vorher window to 1 on exam day; actual progress is compared against
// that ramp with 90% and 60% tolerance thresholds.
func Evaluate(exam models.Exam, today time.Time) (Category, string) {
	if !exam.Datum.Valid {
		return CategoryUnknown, "Datum fehlt"
	}

	daysUntil := exam.Datum.DaysUntil(today)
	if daysUntil < 0 {
		return CategoryPast, "Klausur liegt in der Vergangenheit."
	}
	if daysUntil == 0 {
		return CategoryToday, "Heute ist Klausurtag – GO! 🚀"
	}

	if exam.ZielStunden <= 0 {
		return CategoryUnknown, "Keine geplanten Lernstunden hinterlegt."
	}

	progress := exam.GelerntStunden / exam.ZielStunden

	window := exam.TageVorher
	if window < 1 {
		window = 1
	}
	daysElapsed := window - daysUntil
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	expected := float64(daysElapsed) / float64(window)
	if expected < 0 {
		expected = 0
	} else if expected > 1 {
		expected = 1
	}

	switch {
	case progress >= expected*0.9:
		return CategoryGreen, "Du liegst gut im Plan. Weiter so! ✅"
	case progress >= expected*0.6:
		return CategoryYellow, "Okay, aber da geht noch was. ⚠️"
	default:
		return CategoryRed, "Rückstand zum Plan – besser Gas geben. ❗"
	}
}
