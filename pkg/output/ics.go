package output

import (
	"context"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
)

// defaultEventDuration is used for timed events whose range has no end time.
const defaultEventDuration = time.Hour

// ICSFormatter renders reports as an iCalendar stream so schedules can be
// imported without the CSV intermediate step. The stream shape is fixed, so
// format options do not apply.
type ICSFormatter struct{}

// NewICSFormatter creates a new ICS formatter.
func NewICSFormatter() *ICSFormatter {
	return &ICSFormatter{}
}

// Name returns the format name.
func (f *ICSFormatter) Name() string {
	return "ics"
}

// Format renders the report as a VCALENDAR. All-day events get a DATE-valued
// DTSTART spanning one day; timed events get local DTSTART/DTEND.
func (f *ICSFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//fvrc-calendar//schedule converter//EN")

	for i, e := range report.Events {
		uid := fmt.Sprintf("%s-%d@fvrc-calendar", e.StartDate.Format("20060102"), i+1)
		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(report.Metadata.GeneratedAt)
		ev.SetSummary(e.Subject)

		if e.AllDay {
			ev.SetAllDayStartAt(e.StartDate)
			ev.SetAllDayEndAt(e.StartDate.AddDate(0, 0, 1))
			continue
		}

		start, err := atTime(e.StartDate, e.StartTime)
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Subject, err)
		}
		ev.SetStartAt(start)

		end := start.Add(defaultEventDuration)
		if e.EndTime != "" {
			end, err = atTime(e.StartDate, e.EndTime)
			if err != nil {
				return fmt.Errorf("event %q: %w", e.Subject, err)
			}
		}
		ev.SetEndAt(end)
	}

	return cal.SerializeTo(w)
}

// atTime combines an event date with an "HH:MM" clock value.
func atTime(day time.Time, hhmm string) (time.Time, error) {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}
