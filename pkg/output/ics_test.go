package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestICSFormatter_Format(t *testing.T) {
	f := NewICSFormatter()
	if f.Name() != "ics" {
		t.Errorf("Name() = %q, want %q", f.Name(), "ics")
	}

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("output is not a VCALENDAR:\n%s", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("got %d VEVENTs, want 2", got)
	}
	if !strings.Contains(out, "SUMMARY:Practice") {
		t.Error("timed event summary missing")
	}

	// Timed event: local DTSTART/DTEND at the parsed clock times.
	if !strings.Contains(out, "DTSTART:20260123T100000") {
		t.Errorf("timed DTSTART missing:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20260123T110000") {
		t.Errorf("timed DTEND missing:\n%s", out)
	}

	// All-day event: DATE-valued DTSTART spanning one day.
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20260124") {
		t.Errorf("all-day DTSTART missing:\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20260125") {
		t.Errorf("all-day DTEND missing:\n%s", out)
	}
}

func TestICSFormatter_DefaultDuration(t *testing.T) {
	report := createTestReport()
	// Drop the end time; the event should get a one-hour default.
	report.Events = report.Events[:1]
	report.Events[0].EndTime = ""
	report.Events[0].EndDate = time.Time{}

	var buf bytes.Buffer
	if err := NewICSFormatter().Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "DTEND:20260123T110000") {
		t.Errorf("default one-hour DTEND missing:\n%s", buf.String())
	}
}
