package dto

import "github.com/noah-isme/course-scheduler-api/internal/models"

// GenerateScheduleRequest asks the engine to build a timetable for the
// selected courses. lockedCourses is expected to be a subset of
// selectedCourses but is deliberately not enforced: locked courses are
// always placed first, whatever list they arrived on.
type GenerateScheduleRequest struct {
	SelectedCourses []string `json:"selectedCourses" binding:"required,min=1" validate:"required,min=1,dive,required"`
	LockedCourses   []string `json:"lockedCourses" validate:"omitempty,dive,required"`
	ConstraintText  string   `json:"constraintText"`
}

// GenerateScheduleResponse carries the engine outcome. Success and failure
// are mutually exclusive: a successful response has a schedule and no
// fail_reason, a failed one has a fail_reason (and tagged cause) and no
// schedule.
type GenerateScheduleResponse struct {
	Success     bool                 `json:"success"`
	Schedule    []models.Section     `json:"schedule,omitempty"`
	FailReason  string               `json:"fail_reason,omitempty"`
	FailCause   models.FailureCause  `json:"fail_cause,omitempty"`
	Constraints models.ConstraintSet `json:"constraints"`
}

// RawConstraintPayload is the loosely-shaped output of the constraint
// extractor. Every field is optional; the normalizer supplies defaults.
type RawConstraintPayload struct {
	AvoidMornings *bool          `json:"avoid_mornings,omitempty"`
	AvoidEvenings *bool          `json:"avoid_evenings,omitempty"`
	AvoidFridays  *bool          `json:"avoid_fridays,omitempty"`
	PreferredDays []string       `json:"preferred_days,omitempty"`
	TimeWindow    *RawTimeWindow `json:"time_window,omitempty"`
}

// RawTimeWindow mirrors the extractor's time window shape.
type RawTimeWindow struct {
	Earliest string `json:"earliest,omitempty"`
	Latest   string `json:"latest,omitempty"`
}

// ExplainRequest asks for an advisor-style prose explanation of an outcome.
type ExplainRequest struct {
	UserMessage string           `json:"userMessage" binding:"required"`
	Schedule    []models.Section `json:"schedule"`
	FailReason  string           `json:"fail_reason,omitempty"`
}

// ExplainResponse wraps the generated explanation text.
type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

// ExportScheduleRequest renders an already-generated schedule to a file.
type ExportScheduleRequest struct {
	Schedule []models.Section `json:"schedule" binding:"required,min=1"`
	Title    string           `json:"title"`
}
