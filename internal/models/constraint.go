package models

// TimeWindow bounds acceptable section times. Empty strings mean unbounded.
type TimeWindow struct {
	Earliest string `json:"earliest,omitempty"`
	Latest   string `json:"latest,omitempty"`
}

// ConstraintSet is the canonical, fully-populated form of scheduling
// preferences. Every field is defined after normalization: booleans default
// to false, PreferredDays to an empty list and the time window to unbounded,
// so the scheduler never has to guard against missing values.
type ConstraintSet struct {
	AvoidMornings bool       `json:"avoid_mornings"`
	AvoidEvenings bool       `json:"avoid_evenings"`
	AvoidFridays  bool       `json:"avoid_fridays"`
	PreferredDays []Day      `json:"preferred_days"`
	TimeWindow    TimeWindow `json:"time_window"`
}

// Unconstrained returns the ConstraintSet that admits every section.
func Unconstrained() ConstraintSet {
	return ConstraintSet{PreferredDays: []Day{}}
}
