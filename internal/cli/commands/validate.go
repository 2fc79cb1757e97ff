package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DuquetteLiam/fvrc-calendar/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an fvrc-calendar configuration file without converting anything.

Checks:
  - YAML syntax
  - Export format
  - Default year`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nConfiguration valid!\n")
	dir := cfg.Output.Directory
	if dir == "" {
		dir = "(default: ~/Documents/fvrc_calendar_exports)"
	}
	fmt.Fprintf(w, "  Export folder: %s\n", dir)
	fmt.Fprintf(w, "  File name:     %s\n", cfg.Output.Filename)
	fmt.Fprintf(w, "  Format:        %s\n", cfg.Output.Format)
	fmt.Fprintf(w, "  Open when done: %v\n", cfg.Output.Open)
	if cfg.Year != 0 {
		fmt.Fprintf(w, "  Default year:  %d\n", cfg.Year)
	}

	return nil
}
