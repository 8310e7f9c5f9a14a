package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unidash/uni-dashboard-api/internal/models"
)

var today = time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

func examOn(date string) models.Exam {
	return models.Exam{Fach: "Mathe", Datum: models.ParseDate(date), TageVorher: 21}
}

func TestEvaluateMissingDate(t *testing.T) {
	category, message := Evaluate(models.Exam{Fach: "Mathe"}, today)
	assert.Equal(t, CategoryUnknown, category)
	assert.Equal(t, "Datum fehlt", message)
}

func TestEvaluatePastExam(t *testing.T) {
	category, message := Evaluate(examOn("2026-08-31"), today)
	assert.Equal(t, CategoryPast, category)
	assert.Equal(t, "Klausur liegt in der Vergangenheit.", message)
}

func TestEvaluateExamDay(t *testing.T) {
	exam := examOn("2026-09-01")
	exam.ZielStunden = 40

	category, message := Evaluate(exam, today)
	assert.Equal(t, CategoryToday, category)
	assert.Equal(t, "Heute ist Klausurtag – GO! 🚀", message)
}

func TestEvaluateNoTargetHours(t *testing.T) {
	category, message := Evaluate(examOn("2026-09-20"), today)
	assert.Equal(t, CategoryUnknown, category)
	assert.Equal(t, "Keine geplanten Lernstunden hinterlegt.", message)
}

func TestEvaluateRampThresholds(t *testing.T) {
	// 10 days out with a 20 day window: half the window has elapsed, so the
	// expected share is 0.5 and the green/yellow cuts sit at 0.45 and 0.30.
	base := models.Exam{
		Fach:        "Bio",
		Datum:       models.ParseDate("2026-09-11"),
		TageVorher:  20,
		ZielStunden: 10,
	}

	cases := []struct {
		name     string
		gelernt  float64
		category Category
	}{
		{"comfortably ahead", 9, CategoryGreen},
		{"exactly on the green cut", 4.5, CategoryGreen},
		{"between the cuts", 3.5, CategoryYellow},
		{"exactly on the yellow cut", 3, CategoryYellow},
		{"far behind", 2, CategoryRed},
		{"nothing learned", 0, CategoryRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exam := base
			exam.GelerntStunden = tc.gelernt
			category, _ := Evaluate(exam, today)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestEvaluateBeforeWindowOpensIsGreen(t *testing.T) {
	exam := models.Exam{
		Fach:        "Chemie",
		Datum:       models.ParseDate("2026-10-15"),
		TageVorher:  14,
		ZielStunden: 20,
	}

	// 44 days out, the 14 day window has not opened: expected is 0 and zero
	// progress still counts as on plan.
	category, message := Evaluate(exam, today)
	assert.Equal(t, CategoryGreen, category)
	assert.Equal(t, "Du liegst gut im Plan. Weiter so! ✅", message)
}

func TestEvaluateDegenerateWindow(t *testing.T) {
	exam := models.Exam{
		Fach:        "Physik",
		Datum:       models.ParseDate("2026-09-03"),
		TageVorher:  0,
		ZielStunden: 5,
	}

	// A window below one day is clamped to one; two days out means the ramp
	// has not started.
	category, _ := Evaluate(exam, today)
	assert.Equal(t, CategoryGreen, category)
}
