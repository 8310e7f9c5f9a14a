package models

import (
	"encoding/json"
	"time"
)

// ISODate is the calendar date layout used everywhere in persisted documents.
const ISODate = "2006-01-02"

// Date is a calendar date with an explicit absent state. Absent dates persist
// as the empty string; unparseable input always coerces to absent.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a valid Date from t, discarding the time-of-day component.
func NewDate(t time.Time) Date {
	return Date{Time: midnight(t), Valid: true}
}

// ParseDate is a total parse: anything that is not an ISO date yields the
// absent Date.
func ParseDate(s string) Date {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}
	}
	return Date{Time: t, Valid: true}
}

// String renders the ISO form, or the empty string when absent.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(ISODate)
}

// Equal compares by calendar date, treating two absent dates as equal.
func (d Date) Equal(other Date) bool {
	if d.Valid != other.Valid {
		return false
	}
	if !d.Valid {
		return true
	}
	return midnight(d.Time).Equal(midnight(other.Time))
}

// DaysUntil returns the whole-day distance from today to the date. Negative
// when the date lies in the past. Must not be called on an absent Date.
func (d Date) DaysUntil(today time.Time) int {
	return int(midnight(d.Time).Sub(midnight(today)).Hours() / 24)
}

// Before reports whether d falls strictly before other; absent dates sort last.
func (d Date) Before(other Date) bool {
	if !d.Valid {
		return false
	}
	if !other.Valid {
		return true
	}
	return d.Time.Before(other.Time)
}

// MarshalJSON encodes the ISO string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts an ISO date string; anything else becomes absent.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
