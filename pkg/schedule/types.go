// Package schedule converts freeform, human-typed schedule text into an
// ordered sequence of calendar events.
package schedule

import "time"

// Event is one calendar entry produced by the parser.
type Event struct {
	// Subject is the event description with any leading time expression
	// stripped. Never empty.
	Subject string

	// StartDate is the calendar date the event falls on. Always set.
	StartDate time.Time

	// StartTime is the 24-hour "HH:MM" start, or empty for all-day events.
	StartTime string

	// EndDate is set only when EndTime is present; zero otherwise.
	EndDate time.Time

	// EndTime is the 24-hour "HH:MM" end, or empty.
	EndTime string

	// AllDay is true exactly when StartTime is empty.
	AllDay bool

	// Description and Location are reserved for the export format and are
	// always empty here.
	Description string
	Location    string
}

// DateRef identifies the month/day pair of a header date as typed, before
// any correction.
type DateRef struct {
	Month int
	Day   int
}

// Correction records an invalid header date and the date used in its place.
type Correction struct {
	Original  DateRef
	Corrected time.Time
}

// Prompter supplies the two user interactions the parser may need. Both
// calls block until the collaborator returns; NotifyDateCorrected may be a
// no-op.
type Prompter interface {
	// PromptForMonth is invoked when no month abbreviation is found on the
	// first non-empty line. It must return a month in 1..12.
	PromptForMonth() (int, error)

	// NotifyDateCorrected is invoked when a header names an impossible
	// calendar date and the parser substitutes a corrected one.
	// Informational only; parsing continues regardless.
	NotifyDateCorrected(original DateRef, corrected time.Time)
}
