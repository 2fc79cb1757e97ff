package layout

import (
	"testing"
	"time"
)

const sampleText = `Jan 2026
* board notes
23 Mon 10am-11am Practice • 6pm Swim
24 Tue  Game 7pm
25 Wed
Extra skate 8am
`

func TestDetect(t *testing.T) {
	res := New().Detect(sampleText)

	if !res.HasMonthHeader() || res.Month != time.January {
		t.Errorf("month = %v, want January", res.Month)
	}
	if !res.HasSchedule() {
		t.Error("sample should look like a schedule")
	}
	if res.DayHeaders != 3 {
		t.Errorf("day headers = %d, want 3", res.DayHeaders)
	}
	// Two fragments on the 23rd, one on the 24th, one body line after the
	// 25th.
	if res.Fragments != 4 {
		t.Errorf("fragments = %d, want 4", res.Fragments)
	}
	if res.CommentLines != 1 {
		t.Errorf("comment lines = %d, want 1", res.CommentLines)
	}
	if res.DelimitedLines != 2 {
		t.Errorf("delimited lines = %d, want 2", res.DelimitedLines)
	}
	if res.FirstHeader != "23 Mon 10am-11am Practice • 6pm Swim" {
		t.Errorf("first header = %q", res.FirstHeader)
	}
}

func TestDetectNoSchedule(t *testing.T) {
	res := New().Detect("just some prose\nwith nothing scheduled\n")

	if res.HasSchedule() {
		t.Error("prose should not look like a schedule")
	}
	if res.HasMonthHeader() {
		t.Error("prose has no month header")
	}
}

func TestDetectSampleBudget(t *testing.T) {
	res := New(WithSampleSize(1)).Detect("Jan\n23 Mon Practice\n")

	if res.SampledLines != 1 {
		t.Errorf("sampled = %d, want 1", res.SampledLines)
	}
	if res.DayHeaders != 0 {
		t.Errorf("day headers = %d, want 0 inside the budget", res.DayHeaders)
	}
}
