package store

import "github.com/unidash/uni-dashboard-api/internal/models"

// Per-record decoding. Each declared column gets its default when absent or
// unparseable; parse failures never propagate.

func decodeExam(v interface{}) models.Exam {
	rec := asRecord(v)
	exam := models.Exam{
		Fach:           coerceString(rec["fach"], ""),
		Datum:          coerceDate(rec["datum"]),
		Lernordner:     coerceString(rec["lernordner"], ""),
		TageVorher:     coerceInt(rec["tage_vorher"], 21),
		Archiviert:     coerceBool(rec["archiviert"], false),
		Note:           coerceString(rec["note"], ""),
		ZielStunden:    coerceFloat(rec["ziel_stunden"], 0),
		GelerntStunden: coerceFloat(rec["gelernt_stunden"], 0),
	}
	if exam.TageVorher < 1 {
		exam.TageVorher = 21
	}
	return exam
}

func decodeTodo(v interface{}) models.Todo {
	rec := asRecord(v)
	return models.Todo{
		Text:    coerceString(rec["text"], ""),
		Done:    coerceBool(rec["done"], false),
		Fach:    coerceString(rec["fach"], ""),
		Wichtig: coerceBool(rec["wichtig"], false),
		Faellig: coerceDate(rec["faellig"]),
	}
}

func decodeSeminar(v interface{}) models.Seminar {
	rec := asRecord(v)
	return models.Seminar{
		Titel:      coerceString(rec["titel"], ""),
		Datum:      coerceDate(rec["datum"]),
		Uhrzeit1:   coerceString(rec["uhrzeit1"], ""),
		Datum2:     coerceDate(rec["datum2"]),
		Uhrzeit2:   coerceString(rec["uhrzeit2"], ""),
		Notiz:      coerceString(rec["notiz"], ""),
		Punkte:     coerceFloat(rec["punkte"], 0),
		Absolviert: coerceBool(rec["absolviert"], false),
	}
}

func decodeStudyPlanEntry(v interface{}) models.StudyPlanEntry {
	rec := asRecord(v)
	entry := models.StudyPlanEntry{
		Fach:            coerceString(rec["fach"], ""),
		StundenProWoche: coerceFloat(rec["stunden_pro_woche"], 0),
		Prioritaet:      coerceInt(rec["priorität"], 2),
	}
	if entry.Prioritaet < 1 || entry.Prioritaet > 3 {
		entry.Prioritaet = 2
	}
	return entry
}

func decodeMoodEntry(v interface{}) models.MoodEntry {
	rec := asRecord(v)
	return models.MoodEntry{
		Datum:    coerceDate(rec["datum"]),
		Stimmung: coerceInt(rec["stimmung"], 7),
		Stress:   coerceInt(rec["stress"], 5),
		Schlaf:   coerceFloat(rec["schlaf"], 7),
		Notiz:    coerceString(rec["notiz"], ""),
	}
}
