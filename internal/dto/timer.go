package dto

// StartTimerRequest begins a learning phase or a break. Minutes defaults come
// from configuration when omitted.
type StartTimerRequest struct {
	Mode      string `json:"mode" validate:"required,oneof=lernphase pause"`
	Minutes   int    `json:"minutes" validate:"omitempty,min=1,max=180"`
	ExamIndex *int   `json:"exam_index" validate:"omitempty,min=0"`
}

// TimerStatus is a snapshot of the session timer as of the request.
type TimerStatus struct {
	State            string   `json:"state"`
	Mode             string   `json:"mode,omitempty"`
	RemainingSeconds int      `json:"remaining_seconds"`
	Progress         float64  `json:"progress"`
	ExamIndex        *int     `json:"exam_index,omitempty"`
	CreditedHours    *float64 `json:"credited_hours,omitempty"`
	CreditedFach     string   `json:"credited_fach,omitempty"`
}
