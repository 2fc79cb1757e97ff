package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("DefaultConfig() does not validate: %v", err)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("default format = %q, want csv", cfg.Output.Format)
	}
	if !cfg.Output.Open {
		t.Error("default config should open the export")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
output:
  directory: /tmp/exports
  format: ics
  open: false
year: 2026
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Directory != "/tmp/exports" {
		t.Errorf("directory = %q", cfg.Output.Directory)
	}
	if cfg.Output.Format != "ics" {
		t.Errorf("format = %q, want ics", cfg.Output.Format)
	}
	if cfg.Output.Open {
		t.Error("open should be false")
	}
	if cfg.Output.Filename != DefaultFilename {
		t.Errorf("filename = %q, want default %q", cfg.Output.Filename, DefaultFilename)
	}
	if cfg.Year != 2026 {
		t.Errorf("year = %d, want 2026", cfg.Year)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown format",
			content: "output:\n  format: xlsx\n",
			wantErr: "output.format",
		},
		{
			name:    "negative year",
			content: "year: -5\n",
			wantErr: "year: must not be negative",
		},
		{
			name:    "bad yaml",
			content: "output: [\n",
			wantErr: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := Load(context.Background(), path)
			if err == nil {
				t.Fatal("Load() accepted invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() accepted a missing file")
	}
}

func TestApplyEnvironmentOverridesOnDefaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "/srv/exports")
	t.Setenv(EnvOutputFormat, "ics")

	cfg := DefaultConfig()
	cfg.ApplyEnvironmentOverrides()

	if cfg.Output.Directory != "/srv/exports" {
		t.Errorf("directory = %q, want env override", cfg.Output.Directory)
	}
	if cfg.Output.Format != "ics" {
		t.Errorf("format = %q, want env override ics", cfg.Output.Format)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("overridden defaults do not validate: %v", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvOutputDir, "/srv/exports")
	t.Setenv(EnvOutputFormat, "json")

	path := writeConfigFile(t, "output:\n  format: csv\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Directory != "/srv/exports" {
		t.Errorf("directory = %q, want env override", cfg.Output.Directory)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("format = %q, want env override json", cfg.Output.Format)
	}
}
