// Package export writes rendered schedules into the export folder and opens
// them with the platform file viewer.
package export

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultDir returns the per-user export folder,
// ~/Documents/fvrc_calendar_exports.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative folder rather than failing the export.
		return "fvrc_calendar_exports"
	}
	return filepath.Join(home, "Documents", "fvrc_calendar_exports")
}

// Write renders into dir/name, creating the folder first. The content is
// written to a temporary file and renamed into place so a failed render
// never leaves a partial export behind. Returns the final path.
func Write(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export folder: %w", err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := render(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rendering export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing export file: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalizing export file: %w", err)
	}

	return path, nil
}

// Open launches the platform file opener on an exported file. The opener is
// started and not waited on; callers treat failure as a warning, never as a
// failed conversion.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}
