package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/config"
	"github.com/DuquetteLiam/fvrc-calendar/pkg/export"
	"github.com/DuquetteLiam/fvrc-calendar/pkg/output"
	"github.com/DuquetteLiam/fvrc-calendar/pkg/schedule"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ConvertOptions holds command-line options for the convert command.
type ConvertOptions struct {
	Year     int
	Month    int
	Output   string
	Dir      string
	Filename string
	Config   string
	Stdout   bool
	NoOpen   bool
	Quiet    bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <schedule-file>",
		Short: "Convert schedule text into a calendar import file",
		Long: `Convert pasted schedule text into calendar events and write them to the
export folder. Use "-" as the schedule file to read from stdin.

If the first line of the text carries no month abbreviation, the start
month is asked for interactively; pass --month to answer it up front.
Invalid header dates are corrected (28th of the month plus one day) with
a warning and conversion continues.

Exit codes:
  0 - Events converted and written
  1 - No events found in the text
  2 - Usage, configuration, or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().IntVarP(&opts.Year, "year", "y", 0, "Target year (default: current year)")
	cmd.Flags().IntVarP(&opts.Month, "month", "m", 0, "Start month 1-12, used when the header has none")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (csv|text|json|ics)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Export folder (default: ~/Documents/fvrc_calendar_exports)")
	cmd.Flags().StringVar(&opts.Filename, "filename", "", "Export file name without extension")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file path")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Write to stdout instead of the export folder")
	cmd.Flags().BoolVar(&opts.NoOpen, "no-open", false, "Do not open the exported file when done")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress the summary line")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultConfig()
	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		// Environment overrides apply even when no config file is given.
		cfg.ApplyEnvironmentOverrides()
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("validating config: %w", err)
		}
	}

	// Year must be a positive integer, checked before any parse attempt.
	year := opts.Year
	if year == 0 {
		year = cfg.Year
	}
	if year == 0 {
		year = time.Now().Year()
	}
	if year < 0 {
		return fmt.Errorf("year must be a positive integer, got %d", year)
	}
	if opts.Month < 0 || opts.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", opts.Month)
	}

	text, source, err := readScheduleText(args[0])
	if err != nil {
		return err
	}

	var prompter schedule.Prompter
	if opts.Month != 0 {
		prompter = &fixedMonthPrompter{month: opts.Month, errOut: cmd.ErrOrStderr()}
	} else {
		prompter = &stdinPrompter{in: cmd.InOrStdin(), out: cmd.ErrOrStderr(), errOut: cmd.ErrOrStderr()}
	}

	events, corrections, err := schedule.Parse(text, year, prompter)
	if errors.Is(err, schedule.ErrNoEvents) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No events found.")
		ExitCode = 1
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing schedule: %w", err)
	}

	report := output.NewReport(events, corrections, source, year)

	format := opts.Output
	if format == "" {
		format = cfg.Output.Format
	}
	formatter, err := output.New(format, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	if opts.Stdout {
		return formatter.Format(ctx, report, cmd.OutOrStdout())
	}

	dir := opts.Dir
	if dir == "" {
		dir = cfg.Output.Directory
	}
	if dir == "" {
		dir = export.DefaultDir()
	}
	filename := opts.Filename
	if filename == "" {
		filename = cfg.Output.Filename
	}

	path, err := export.Write(dir, filename+output.Extension(formatter.Name()), func(w io.Writer) error {
		return formatter.Format(ctx, report, w)
	})
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d event(s) to %s\n", len(events), path)
		if len(corrections) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Corrected %d invalid date(s); see warnings above\n", len(corrections))
		}
	}

	if cfg.Output.Open && !opts.NoOpen {
		if err := export.Open(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}

	return nil
}

// readScheduleText loads the schedule text from a file, or from stdin when
// the path is "-".
func readScheduleText(path string) (text, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "-", nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided schedule path is expected
	if err != nil {
		return "", "", fmt.Errorf("reading schedule file: %w", err)
	}
	return string(data), path, nil
}
