package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/layout"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output     string
	SampleSize int
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <schedule-file>",
		Short: "Inspect schedule text without converting it",
		Long: `Analyze pasted schedule text and report how much of the expected layout
it contains: the detected month header, day header lines, event fragments,
and the delimiter conventions in use.

Useful as a dry run before convert, especially to see whether the month
will be detected or prompted for.

Example:
  fvrc-calendar inspect schedule.txt
  fvrc-calendar inspect --sample 50 schedule.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 200, "Number of lines to sample")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	scheduleFile := args[0]

	if _, err := os.Stat(scheduleFile); os.IsNotExist(err) {
		return fmt.Errorf("schedule file not found: %s", scheduleFile)
	}

	text, _, err := readScheduleText(scheduleFile)
	if err != nil {
		return err
	}

	d := layout.New(layout.WithSampleSize(opts.SampleSize))
	result := d.Detect(text)

	switch opts.Output {
	case "json":
		return outputInspectJSON(cmd, result, scheduleFile)
	case "text":
		return outputInspectText(cmd, result, scheduleFile)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

func outputInspectText(cmd *cobra.Command, result *layout.Result, scheduleFile string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "=== Schedule Layout ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "File: %s\n", scheduleFile)
	fmt.Fprintf(w, "Lines sampled: %d\n", result.SampledLines)
	fmt.Fprintln(w)

	if !result.HasSchedule() {
		fmt.Fprintln(w, "No day header lines found.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tip: day headers look like \"23 Mon\" with optional events after them.")
		return nil
	}

	if result.HasMonthHeader() {
		fmt.Fprintf(w, "Month header:    %s\n", result.Month)
	} else {
		fmt.Fprintln(w, "Month header:    none (convert will prompt, or use --month)")
	}
	fmt.Fprintf(w, "Day headers:     %d\n", result.DayHeaders)
	fmt.Fprintf(w, "Event fragments: %d\n", result.Fragments)
	fmt.Fprintf(w, "Delimited lines: %d\n", result.DelimitedLines)
	fmt.Fprintf(w, "Comment lines:   %d\n", result.CommentLines)
	fmt.Fprintf(w, "First header:    %s\n", result.FirstHeader)

	return nil
}

func outputInspectJSON(cmd *cobra.Command, result *layout.Result, scheduleFile string) error {
	out := struct {
		File           string `json:"file"`
		SampledLines   int    `json:"sampled_lines"`
		Month          string `json:"month,omitempty"`
		DayHeaders     int    `json:"day_headers"`
		Fragments      int    `json:"fragments"`
		DelimitedLines int    `json:"delimited_lines"`
		CommentLines   int    `json:"comment_lines"`
		FirstHeader    string `json:"first_header,omitempty"`
	}{
		File:           scheduleFile,
		SampledLines:   result.SampledLines,
		DayHeaders:     result.DayHeaders,
		Fragments:      result.Fragments,
		DelimitedLines: result.DelimitedLines,
		CommentLines:   result.CommentLines,
		FirstHeader:    result.FirstHeader,
	}
	if result.HasMonthHeader() {
		out.Month = result.Month.String()
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
