package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter renders a human-readable preview of the converted schedule,
// one event per line in the shape "MM/DD/YYYY HH:MM-HH:MM Subject". All-day
// events leave the time slots empty.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as a preview listing.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%d event(s), %d corrected date(s)\n",
		len(report.Events), len(report.Corrections))
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Schedule Preview ===")
	fmt.Fprintln(w)

	for _, c := range report.Corrections {
		fmt.Fprintf(w, "Corrected: %d/%d is not a valid date, using %s\n",
			c.Original.Month, c.Original.Day, c.Corrected.Format("Jan 2"))
	}
	if len(report.Corrections) > 0 {
		fmt.Fprintln(w)
	}

	for _, e := range report.Events {
		fmt.Fprintf(w, "%s %s-%s %s\n",
			formatDate(e.StartDate), e.StartTime, e.EndTime, e.Subject)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d event(s) for %d from %s\n",
		len(report.Events), report.Metadata.Year, report.Metadata.Source)

	return nil
}
