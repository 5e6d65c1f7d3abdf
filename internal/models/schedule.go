package models

import "fmt"

// ScheduleEntry pins a course to the section chosen for it.
type ScheduleEntry struct {
	Course  string  `json:"course"`
	Section Section `json:"section"`
}

// Schedule is an ordered accumulation of chosen sections. Order is
// significant: locked courses come first, then remaining courses in request
// order, which keeps the engine's output reproducible. Each request builds
// its own Schedule; nothing is shared or persisted.
type Schedule struct {
	entries []ScheduleEntry
}

// Add appends a chosen section for a course.
func (s *Schedule) Add(course string, section Section) {
	s.entries = append(s.entries, ScheduleEntry{Course: course, Section: section})
}

// Conflicts reports whether the candidate section overlaps any section
// already placed.
func (s *Schedule) Conflicts(candidate Section) bool {
	for _, entry := range s.entries {
		if entry.Section.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Len returns the number of placed sections.
func (s *Schedule) Len() int {
	return len(s.entries)
}

// Sections returns the chosen sections in placement order.
func (s *Schedule) Sections() []Section {
	result := make([]Section, 0, len(s.entries))
	for _, entry := range s.entries {
		result = append(result, entry.Section)
	}
	return result
}

// FailureCause tags why scheduling stopped, so callers can branch on cause
// instead of parsing prose.
type FailureCause string

const (
	// FailureUnknownCourse: the requested course has no catalog entries.
	FailureUnknownCourse FailureCause = "UNKNOWN_COURSE"
	// FailureLockedConflict: a locked course's section collides with
	// another locked course.
	FailureLockedConflict FailureCause = "LOCKED_CONFLICT"
	// FailureConstraintExhausted: every candidate was filtered out by the
	// active constraints.
	FailureConstraintExhausted FailureCause = "CONSTRAINT_EXHAUSTED"
	// FailureScheduleConflict: every constraint-satisfying candidate
	// overlaps an already-placed section.
	FailureScheduleConflict FailureCause = "SCHEDULE_CONFLICT"
)

// ScheduleFailure names the first course that could not be placed and why.
// A failed run yields exactly one failure and no schedule; a successful run
// yields a schedule and no failure.
type ScheduleFailure struct {
	Cause  FailureCause `json:"cause"`
	Course string       `json:"course"`
}

// Reason renders the failure as the human-readable string exposed by the API.
func (f *ScheduleFailure) Reason() string {
	if f == nil {
		return ""
	}
	switch f.Cause {
	case FailureUnknownCourse:
		return fmt.Sprintf("No sections exist for %s", f.Course)
	case FailureLockedConflict:
		return fmt.Sprintf("Locked course %s could not be placed without a conflict", f.Course)
	case FailureConstraintExhausted:
		return fmt.Sprintf("No section of %s satisfies the requested constraints", f.Course)
	case FailureScheduleConflict:
		return fmt.Sprintf("Every eligible section of %s conflicts with the existing schedule", f.Course)
	default:
		return fmt.Sprintf("No valid section exists for %s", f.Course)
	}
}
