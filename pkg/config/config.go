package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. Fields absent from the
// file keep their defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Output.Filename == "" {
		return errors.New("output.filename: must not be empty")
	}

	if !validFormats[cfg.Output.Format] {
		return fmt.Errorf("output.format: invalid format %q (use csv, text, json, or ics)", cfg.Output.Format)
	}

	if cfg.Year < 0 {
		return fmt.Errorf("year: must not be negative, got %d", cfg.Year)
	}

	return nil
}
