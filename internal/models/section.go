package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Day identifies a meeting day using the catalog's short English names.
type Day string

const (
	DayMon Day = "Mon"
	DayTue Day = "Tue"
	DayWed Day = "Wed"
	DayThu Day = "Thu"
	DayFri Day = "Fri"
	DaySat Day = "Sat"
	DaySun Day = "Sun"
)

var dayNames = map[string]Day{
	"mon": DayMon, "monday": DayMon,
	"tue": DayTue, "tues": DayTue, "tuesday": DayTue,
	"wed": DayWed, "wednesday": DayWed,
	"thu": DayThu, "thur": DayThu, "thurs": DayThu, "thursday": DayThu,
	"fri": DayFri, "friday": DayFri,
	"sat": DaySat, "saturday": DaySat,
	"sun": DaySun, "sunday": DaySun,
}

// ParseDay resolves a day name (short or long, any case) to its canonical form.
func ParseDay(raw string) (Day, error) {
	day, ok := dayNames[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unknown day %q", raw)
	}
	return day, nil
}

// ParseClock converts a 24-hour "HH:MM" string into minutes since midnight.
func ParseClock(raw string) (int, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock value %q, want HH:MM", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", raw)
	}
	return hours*60 + minutes, nil
}

// Section is one concrete meeting instance of a course. Sections originate
// from the read-only catalog and are never mutated after load.
type Section struct {
	Course    string `db:"course" json:"course"`
	Day       Day    `db:"day" json:"day"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
	Location  string `db:"location" json:"location"`

	startMin int
	endMin   int
}

// NewSection validates the raw fields and returns an immutable section.
// Clock strings are checked here so the scheduler can compare times without
// re-validating on every comparison.
func NewSection(course string, day Day, startTime, endTime, location string) (Section, error) {
	if strings.TrimSpace(course) == "" {
		return Section{}, fmt.Errorf("section course is required")
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return Section{}, fmt.Errorf("section %s start_time: %w", course, err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Section{}, fmt.Errorf("section %s end_time: %w", course, err)
	}
	if start >= end {
		return Section{}, fmt.Errorf("section %s starts at or after its end (%s >= %s)", course, startTime, endTime)
	}
	return Section{
		Course:    course,
		Day:       day,
		StartTime: startTime,
		EndTime:   endTime,
		Location:  location,
		startMin:  start,
		endMin:    end,
	}, nil
}

// StartMinutes returns the start time as minutes since midnight.
func (s Section) StartMinutes() int {
	return s.startMin
}

// EndMinutes returns the end time as minutes since midnight.
func (s Section) EndMinutes() int {
	return s.endMin
}

// Overlaps reports whether two sections collide. Intervals are half-open
// [start, end): sections on different days never overlap, and touching
// endpoints (one ends exactly when the other begins) are legal.
func (s Section) Overlaps(other Section) bool {
	if s.Day != other.Day {
		return false
	}
	return s.startMin < other.endMin && other.startMin < s.endMin
}
