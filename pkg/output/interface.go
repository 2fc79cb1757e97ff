package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders a conversion report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (csv, text, json, ics).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Quiet enables minimal summary-only output where the format supports
	// it.
	Quiet bool
}

// New returns the Formatter for a format name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "csv":
		return NewCSVFormatter(), nil
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "ics":
		return NewICSFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use csv, text, json, or ics)", name)
	}
}

// Extension returns the file extension for a format name, dot included.
func Extension(name string) string {
	if name == "text" {
		return ".txt"
	}
	return "." + name
}
