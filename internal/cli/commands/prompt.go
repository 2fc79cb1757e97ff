package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/schedule"
)

// stdinPrompter asks for the start month on the terminal and prints date
// corrections to stderr, mirroring the interactive flow the converter
// replaces.
type stdinPrompter struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (p *stdinPrompter) PromptForMonth() (int, error) {
	fmt.Fprint(p.out, "Could not detect month from header. Enter start month (1-12): ")

	var month int
	if _, err := fmt.Fscanln(p.in, &month); err != nil {
		return 0, fmt.Errorf("reading month: %w", err)
	}
	return month, nil
}
func (p *stdinPrompter) NotifyDateCorrected(original schedule.DateRef, corrected time.Time) {
	fmt.Fprintf(p.errOut, "Warning: invalid date %d/%d, using %s\n",
		original.Month, original.Day, corrected.Format("Jan 2"))
}

// fixedMonthPrompter answers the month question from the --month flag so
// conversion stays non-interactive. Corrections still go to stderr.
type fixedMonthPrompter struct {
	month  int
	errOut io.Writer
}

func (p *fixedMonthPrompter) PromptForMonth() (int, error) {
	return p.month, nil
}

func (p *fixedMonthPrompter) NotifyDateCorrected(original schedule.DateRef, corrected time.Time) {
	fmt.Fprintf(p.errOut, "Warning: invalid date %d/%d, using %s\n",
		original.Month, original.Day, corrected.Format("Jan 2"))
}
