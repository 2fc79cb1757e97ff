// Package config provides configuration loading and validation for the
// schedule converter.
package config

// Config is the root configuration structure loaded from YAML. Every field
// is optional; DefaultConfig supplies a complete working configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`

	// Year is the default target year for conversions. Zero means the
	// current year at run time.
	Year int `yaml:"year,omitempty"`
}

// OutputConfig controls where and how converted schedules are written.
type OutputConfig struct {
	// Directory is the export folder. Empty means the per-user default
	// under Documents.
	Directory string `yaml:"directory,omitempty"`

	// Filename is the export file name without extension.
	Filename string `yaml:"filename,omitempty"`

	// Format is the export format (csv, text, json, ics).
	Format string `yaml:"format,omitempty"`

	// Open controls whether the exported file is opened with the platform
	// viewer when conversion finishes.
	Open bool `yaml:"open"`
}
