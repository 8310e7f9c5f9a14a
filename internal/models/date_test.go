package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateCoercesGarbageToAbsent(t *testing.T) {
	for _, input := range []string{"", "morgen", "2026-13-40", "01.10.2026"} {
		assert.False(t, ParseDate(input).Valid, "input %q", input)
	}
	assert.True(t, ParseDate("2026-10-01").Valid)
}

func TestDateStringAbsent(t *testing.T) {
	assert.Equal(t, "", Date{}.String())
	assert.Equal(t, "2026-10-01", ParseDate("2026-10-01").String())
}

func TestDateDaysUntil(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 30, ParseDate("2026-10-01").DaysUntil(today))
	assert.Equal(t, 0, ParseDate("2026-09-01").DaysUntil(today))
	assert.Equal(t, -1, ParseDate("2026-08-31").DaysUntil(today))
}

func TestDateBeforeSortsAbsentLast(t *testing.T) {
	early := ParseDate("2026-09-01")
	late := ParseDate("2026-10-01")
	absent := Date{}

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.True(t, early.Before(absent))
	assert.False(t, absent.Before(early))
	assert.False(t, absent.Before(absent))
}

func TestDateEqualIgnoresTimeOfDay(t *testing.T) {
	morning := NewDate(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))
	evening := NewDate(time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC))

	assert.True(t, morning.Equal(evening))
	assert.True(t, Date{}.Equal(Date{}))
	assert.False(t, morning.Equal(Date{}))
}

func TestDateJSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(ParseDate("2026-10-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-01"`, string(payload))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-01"`), &d))
	assert.True(t, d.Valid)

	require.NoError(t, json.Unmarshal([]byte(`42`), &d))
	assert.False(t, d.Valid)

	require.NoError(t, json.Unmarshal([]byte(`"kein datum"`), &d))
	assert.False(t, d.Valid)
}
