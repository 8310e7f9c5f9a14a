package models

import "time"

// TimerMode distinguishes learning phases from breaks. Only learning phases
// credit study time.
type TimerMode string

const (
	TimerModeLearn TimerMode = "lernphase"
	TimerModeBreak TimerMode = "pause"
)

// TimerState is the observable phase of a session timer.
type TimerState string

const (
	TimerStateIdle    TimerState = "idle"
	TimerStateRunning TimerState = "running"
	TimerStateExpired TimerState = "expired"
)

// TimerSession is the per-session timer state. It lives in memory only; the
// persisted document is touched solely through the credit event.
type TimerSession struct {
	ID        string
	Mode      TimerMode
	StartedAt time.Time
	Duration  time.Duration
	ExamIndex *int
	Credited  bool
}
