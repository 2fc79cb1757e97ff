// Package output renders converted schedules in the supported export
// formats.
package output

import (
	"time"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/schedule"
)

// Report is the complete conversion output handed to a Formatter.
type Report struct {
	// Events is the ordered event sequence, exactly as parsed.
	Events []schedule.Event

	// Corrections lists header dates that had to be corrected.
	Corrections []schedule.Correction

	// Metadata provides context about the conversion run.
	Metadata Metadata
}

// Metadata describes where the schedule came from and when it was converted.
type Metadata struct {
	// Source is the input file path, or "-" for stdin.
	Source string

	// Year is the target year the schedule was resolved against.
	Year int

	// GeneratedAt is when the conversion ran.
	GeneratedAt time.Time
}

// NewReport creates a Report for a finished conversion.
func NewReport(events []schedule.Event, corrections []schedule.Correction, source string, year int) *Report {
	return &Report{
		Events:      events,
		Corrections: corrections,
		Metadata: Metadata{
			Source:      source,
			Year:        year,
			GeneratedAt: time.Now(),
		},
	}
}

// dateLayout is the calendar-import date format, MM/DD/YYYY.
const dateLayout = "01/02/2006"

// formatDate renders a date for export; zero dates become the empty string.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// allDayString renders the all-day flag the way calendar imports expect it.
func allDayString(allDay bool) string {
	if allDay {
		return "True"
	}
	return "False"
}
