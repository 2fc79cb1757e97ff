package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayHeaderPattern matches "<1-2 digit day> <weekday word> [trailing text]".
// The weekday token is not validated beyond being a word.
var dayHeaderPattern = regexp.MustCompile(`^(\d{1,2})\s+\w+(.*)$`)

// monthHeaderPattern matches a three-letter month abbreviation at the start
// of the header line. Case-sensitive, matching the source layout.
var monthHeaderPattern = regexp.MustCompile(`^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)

// parserState tracks the scan position between lines. It lives for exactly
// one Parse call and is never shared.
type parserState struct {
	currentDate time.Time
	startMonth  time.Month
	lastDay     int
	year        int

	prompter    Prompter
	corrections []Correction
}

// HeaderMonth reads the month abbreviation from the first non-empty line of
// the text. The second return is false when that line carries no
// recognizable month.
func HeaderMonth(text string) (time.Month, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := monthHeaderPattern.FindStringSubmatch(line)
		if m == nil {
			return 0, false
		}
		t, err := time.Parse("Jan", m[1])
		if err != nil {
			return 0, false
		}
		return t.Month(), true
	}
	return 0, false
}

// SplitDayHeader reports whether a line opens a new day. On a match it
// returns the day-of-month number and any trailing same-line content, which
// the caller feeds back through the event splitter.
func SplitDayHeader(line string) (day int, trailing string, ok bool) {
	m := dayHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	day, _ = strconv.Atoi(m[1])
	return day, strings.TrimSpace(m[2]), true
}

// interpretDayHeader applies a day header to the state: it resolves the
// header's date (including month rollover and invalid-date correction) and
// returns the trailing same-line content.
func (st *parserState) interpretDayHeader(line string) (trailing string, ok bool) {
	day, trailing, ok := SplitDayHeader(line)
	if !ok {
		return "", false
	}

	month := st.startMonth
	// Day numbers going backwards mean the schedule crossed into the next
	// month. The year is never advanced on a 12->1 wrap.
	if st.lastDay > 0 && day < st.lastDay {
		month++
		if month > 12 {
			month = time.January
		}
	}
	st.lastDay = day
	st.currentDate = st.resolveDate(month, day)
	return trailing, true
}

// resolveDate builds the header's date. An impossible month/day combination
// is replaced by the 28th of the month plus one day; the substitution is an
// approximation, not calendar-accurate rollover, and is reported through the
// prompter and the correction list.
func (st *parserState) resolveDate(month time.Month, day int) time.Time {
	d := time.Date(st.year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() == month && d.Day() == day {
		return d
	}

	corrected := time.Date(st.year, month, 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	ref := DateRef{Month: int(month), Day: day}
	st.corrections = append(st.corrections, Correction{Original: ref, Corrected: corrected})
	st.prompter.NotifyDateCorrected(ref, corrected)
	return corrected
}
