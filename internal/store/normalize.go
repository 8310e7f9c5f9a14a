package store

import (
	"strconv"
	"strings"

	"github.com/unidash/uni-dashboard-api/internal/models"
)

// Normalize coerces an arbitrary decoded JSON value into a well-formed
// Document. It is total: malformed input degrades to defaults and never
// produces an error. Non-mapping input discards everything.
func Normalize(raw interface{}) *models.Document {
	doc := models.NewDocument()

	m, ok := raw.(map[string]interface{})
	if !ok {
		return doc
	}

	for _, item := range asList(m["klausuren"]) {
		doc.Klausuren = append(doc.Klausuren, decodeExam(item))
	}
	for _, item := range asList(m["todos"]) {
		doc.Todos = append(doc.Todos, decodeTodo(item))
	}
	for _, item := range asList(m["seminare"]) {
		doc.Seminare = append(doc.Seminare, decodeSeminar(item))
	}
	for _, item := range asList(m["lernplan"]) {
		doc.Lernplan = append(doc.Lernplan, decodeStudyPlanEntry(item))
	}
	for _, item := range asList(m["mood"]) {
		doc.Mood = append(doc.Mood, decodeMoodEntry(item))
	}

	if s, ok := m["stundenplan_html"].(string); ok {
		doc.StundenplanHTML = s
	}

	return doc
}

// asList returns the value as a record list, or an empty list when the key is
// absent or holds the wrong container type.
func asList(v interface{}) []interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return list
}

func asRecord(v interface{}) map[string]interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return m
}

func coerceString(v interface{}, def string) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return def
	}
}

func coerceFloat(v interface{}, def float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

func coerceInt(v interface{}, def int) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return def
		}
		return int(f)
	default:
		return def
	}
}

func coerceBool(v interface{}, def bool) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no", "":
			return false
		}
		return def
	case float64:
		return val != 0
	default:
		return def
	}
}

func coerceDate(v interface{}) models.Date {
	s, ok := v.(string)
	if !ok {
		return models.Date{}
	}
	return models.ParseDate(s)
}
