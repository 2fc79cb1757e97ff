package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeRangePattern accepts the restricted time grammar at the start of a
// fragment: H[:MM] [am|pm] [- H[:MM] [am|pm]]. Minutes default to :00 and an
// am/pm marker applies only to the side it is attached to.
var timeRangePattern = regexp.MustCompile(`(?i)^(\d{1,2}(?::\d{2})?)\s*(am|pm)?\s*(?:-\s*(\d{1,2}(?::\d{2})?)\s*(am|pm)?)?`)

// timePrefixPattern matches the full leading time expression so it can be
// stripped from a fragment when deriving the subject. The end side may be
// partially present or absent.
var timePrefixPattern = regexp.MustCompile(`(?i)^(\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*-?\s*\d{0,2}(?::\d{2})?\s*(?:am|pm)?)\s*`)

// ParseTimeRange extracts the leading time range from a fragment and returns
// start and end in zero-padded 24-hour "HH:MM" form. Either value may be
// empty; a fragment with no recognizable time yields ("", "") and is treated
// as all-day, never as an error.
//
// En-dashes are normalized to hyphens before matching. When only one side of
// a range carries an am/pm marker the other side is converted independently
// with no marker, so "9-10pm" yields ("09:00", "22:00").
func ParseTimeRange(text string) (start, end string) {
	text = strings.ReplaceAll(text, "–", "-")
	m := timeRangePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", ""
	}
	start = to24Hour(m[1], m[2])
	if m[3] != "" {
		end = to24Hour(m[3], m[4])
	}
	return start, end
}

// to24Hour converts "H" or "H:MM" plus an optional am/pm marker to 24-hour
// "HH:MM". Without a marker the digits are taken as literal 24-hour values.
func to24Hour(t, marker string) string {
	if !strings.Contains(t, ":") {
		t += ":00"
	}
	parts := strings.SplitN(t, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	switch strings.ToLower(marker) {
	case "pm":
		if h != 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// stripTimePrefix removes the leading time expression from a fragment. When
// stripping would leave nothing, the original fragment is returned untouched
// so the subject is never empty.
func stripTimePrefix(fragment string) string {
	rest := strings.TrimSpace(timePrefixPattern.ReplaceAllString(fragment, ""))
	if rest == "" {
		return fragment
	}
	return rest
}
