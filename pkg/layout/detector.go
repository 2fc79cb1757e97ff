// Package layout inspects pasted schedule text and reports how much of the
// expected structure it contains, before any conversion is attempted.
package layout

import (
	"regexp"
	"strings"
	"time"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/schedule"
)

// multiSpacePattern spots the two-or-more-space delimiter convention.
var multiSpacePattern = regexp.MustCompile(`\S\s{2,}\S`)

// Result holds the structure found in a sampled schedule text.
type Result struct {
	// SampledLines is the number of lines inspected.
	SampledLines int

	// Month is the month parsed from the header line; zero when the text
	// has no recognizable month header (conversion will prompt for it).
	Month time.Month

	// DayHeaders counts lines that open a new day.
	DayHeaders int

	// Fragments counts event fragments across header trailers and body
	// lines.
	Fragments int

	// DelimitedLines counts lines using bullet or multi-space delimiters.
	DelimitedLines int

	// CommentLines counts lines the parser will skip as comments.
	CommentLines int

	// FirstHeader is a sample day header line, for display.
	FirstHeader string
}

// HasMonthHeader reports whether a month was detected on the header line.
func (r *Result) HasMonthHeader() bool {
	return r.Month != 0
}

// HasSchedule reports whether the text looks like a schedule at all.
func (r *Result) HasSchedule() bool {
	return r.DayHeaders > 0
}

// Detector samples schedule text and reports its layout.
type Detector struct {
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 200).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector.
func New(opts ...Option) *Detector {
	d := &Detector{sampleSize: 200}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect analyzes schedule text up to the sample budget.
func (d *Detector) Detect(text string) *Result {
	res := &Result{}

	if month, ok := schedule.HeaderMonth(text); ok {
		res.Month = month
	}

	lines := strings.Split(text, "\n")
	if len(lines) > d.sampleSize {
		lines = lines[:d.sampleSize]
	}
	res.SampledLines = len(lines)

	inDate := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			res.CommentLines++
			continue
		}

		if strings.ContainsRune(line, '•') || multiSpacePattern.MatchString(line) {
			res.DelimitedLines++
		}

		if _, trailing, ok := schedule.SplitDayHeader(line); ok {
			res.DayHeaders++
			if res.FirstHeader == "" {
				res.FirstHeader = line
			}
			inDate = true
			res.Fragments += len(schedule.SplitFragments(trailing))
			continue
		}

		if inDate {
			res.Fragments += len(schedule.SplitFragments(line))
		}
	}

	return res
}
