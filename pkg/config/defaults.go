package config

import "os"

// Default values for configuration.
const (
	DefaultFilename = "fvrc_calendar"
	DefaultFormat   = "csv"
)

// Environment variable names.
const (
	EnvOutputDir    = "FVRC_OUTPUT_DIR"
	EnvOutputFormat = "FVRC_OUTPUT_FORMAT"
)

// validFormats is the set of export formats the output layer implements.
var validFormats = map[string]bool{
	"csv":  true,
	"text": true,
	"json": true,
	"ics":  true,
}

// DefaultConfig returns a configuration with sensible defaults. The tool
// runs with no config file at all.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Filename: DefaultFilename,
			Format:   DefaultFormat,
			Open:     true,
		},
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the
// config. Load calls it automatically; callers running without a config
// file apply it to DefaultConfig themselves.
func (c *Config) ApplyEnvironmentOverrides() {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.Output.Directory = dir
	}
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = format
	}
}
