package dto

// ScheduleRequest replaces the stored timetable HTML blob. An empty string
// clears it.
type ScheduleRequest struct {
	HTML string `json:"html"`
}

// ScheduleResponse returns the stored blob verbatim.
type ScheduleResponse struct {
	HTML string `json:"html"`
}
