package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders reports as indented JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// jsonReport is the wire shape: dates and times pre-formatted the same way
// the CSV export renders them.
type jsonReport struct {
	Events      []jsonEvent      `json:"events"`
	Corrections []jsonCorrection `json:"corrections,omitempty"`
	Metadata    jsonMetadata     `json:"metadata"`
}

type jsonEvent struct {
	Subject   string `json:"subject"`
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	AllDay    bool   `json:"all_day"`
}

type jsonCorrection struct {
	OriginalMonth int    `json:"original_month"`
	OriginalDay   int    `json:"original_day"`
	Corrected     string `json:"corrected"`
}

type jsonMetadata struct {
	Source     string `json:"source"`
	Year       int    `json:"year"`
	EventCount int    `json:"event_count"`
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	out := jsonReport{
		Events: make([]jsonEvent, 0, len(report.Events)),
		Metadata: jsonMetadata{
			Source:     report.Metadata.Source,
			Year:       report.Metadata.Year,
			EventCount: len(report.Events),
		},
	}

	for _, e := range report.Events {
		out.Events = append(out.Events, jsonEvent{
			Subject:   e.Subject,
			StartDate: formatDate(e.StartDate),
			StartTime: e.StartTime,
			EndDate:   formatDate(e.EndDate),
			EndTime:   e.EndTime,
			AllDay:    e.AllDay,
		})
	}

	for _, c := range report.Corrections {
		out.Corrections = append(out.Corrections, jsonCorrection{
			OriginalMonth: c.Original.Month,
			OriginalDay:   c.Original.Day,
			Corrected:     formatDate(c.Corrected),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(out.Metadata)
	}
	return encoder.Encode(out)
}
