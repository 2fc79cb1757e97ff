package schedule

import (
	"regexp"
	"strings"
)

// fragmentSplitPattern divides a line into event fragments on bullet
// characters or runs of two or more whitespace characters. Single spaces are
// ordinary word spacing and never split.
var fragmentSplitPattern = regexp.MustCompile(`•|\s{2,}`)

// SplitFragments breaks a line into its non-empty, trimmed event fragments.
func SplitFragments(line string) []string {
	var fragments []string
	for _, fragment := range fragmentSplitPattern.Split(line, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}

// splitEvents turns a body line (or trailing header content) into events
// dated currentDate. Lines seen before any day header are discarded.
func (st *parserState) splitEvents(line string) []Event {
	if st.currentDate.IsZero() {
		return nil
	}
	var events []Event
	for _, fragment := range SplitFragments(line) {
		events = append(events, st.buildEvent(fragment))
	}
	return events
}

// buildEvent assembles one Event from a fragment. A fragment with no leading
// time is an all-day event and keeps the whole fragment as its subject.
func (st *parserState) buildEvent(fragment string) Event {
	start, end := ParseTimeRange(fragment)
	ev := Event{
		Subject:   stripTimePrefix(fragment),
		StartDate: st.currentDate,
		StartTime: start,
		EndTime:   end,
		AllDay:    start == "",
	}
	if end != "" {
		ev.EndDate = st.currentDate
	}
	return ev
}
