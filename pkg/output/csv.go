package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the calendar-import column contract. Order matters.
var csvHeader = []string{
	"Subject", "Start Date", "Start Time", "End Date", "End Time",
	"All Day Event", "Description", "Location",
}

// CSVFormatter renders reports in the calendar-import CSV layout. The
// column contract is fixed, so format options do not apply.
type CSVFormatter struct{}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the report as CSV, one record per event in input order.
func (f *CSVFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range report.Events {
		record := []string{
			e.Subject,
			formatDate(e.StartDate),
			e.StartTime,
			formatDate(e.EndDate),
			e.EndTime,
			allDayString(e.AllDay),
			e.Description,
			e.Location,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record for %q: %w", e.Subject, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
