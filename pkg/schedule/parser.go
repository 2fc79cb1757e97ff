package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoEvents is returned when the text yields no events at all. It marks an
// outcome, not a fault: callers surface it to the user and exit cleanly.
var ErrNoEvents = errors.New("no events found")

// commentPrefix marks lines the parser skips entirely.
const commentPrefix = "*"

// Parse converts schedule text into calendar events for the given year.
// Lines are consumed top to bottom and events come back in strict input
// order.
//
// The prompter supplies the start month when the header line has no month
// abbreviation and is notified of corrected dates; the same corrections are
// also returned so non-interactive callers can render them later.
func Parse(text string, year int, prompter Prompter) ([]Event, []Correction, error) {
	startMonth, found := HeaderMonth(text)
	if !found {
		m, err := prompter.PromptForMonth()
		if err != nil {
			return nil, nil, fmt.Errorf("reading start month: %w", err)
		}
		if m < 1 || m > 12 {
			return nil, nil, fmt.Errorf("start month must be between 1 and 12, got %d", m)
		}
		startMonth = time.Month(m)
	}

	st := &parserState{
		year:       year,
		startMonth: startMonth,
		prompter:   prompter,
	}

	var events []Event
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if trailing, ok := st.interpretDayHeader(line); ok {
			if trailing == "" {
				continue
			}
			// Events on the header line are split like any body line.
			line = trailing
		}

		events = append(events, st.splitEvents(line)...)
	}

	if len(events) == 0 {
		return nil, st.corrections, ErrNoEvents
	}
	return events, st.corrections, nil
}
