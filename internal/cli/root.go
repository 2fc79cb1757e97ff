// Package cli provides the command-line interface for the schedule
// converter.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DuquetteLiam/fvrc-calendar/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fvrc-calendar",
		Short: "Convert pasted schedule text into calendar import files",
		Long: `fvrc-calendar turns freeform weekly/monthly schedule text, as pasted from
a newsletter or bulletin, into structured calendar events.

It understands:
  - Day header lines ("23 Mon", "24 Tue 10am-11am Practice")
  - Month rollover when day numbers decrease between headers
  - Bulleted or double-space separated event lists on one line
  - Ambiguous time ranges ("10am-11:30am", "9-10pm", "14:00")

Events without a recognizable time become all-day events. The result is
written as CSV (the calendar-import column layout), ICS, JSON, or a plain
text preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
