package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settext.yaml")
	content := `
lenient: true
watch:
  debounce_interval: 500ms
  extensions: [".mse-set"]
display:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.Lenient {
		t.Error("Lenient = false, want true")
	}
	if cfg.Watch.DebounceInterval != 500*time.Millisecond {
		t.Errorf("DebounceInterval = %v, want 500ms", cfg.Watch.DebounceInterval)
	}
	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".mse-set" {
		t.Errorf("Extensions = %v", cfg.Watch.Extensions)
	}
	if cfg.Display.Format != "json" {
		t.Errorf("Display.Format = %q, want json", cfg.Display.Format)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("lenient: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLoader(path).Load()
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad display format", func(c *Config) { c.Display.Format = "fancy" }},
		{"bad color mode", func(c *Config) { c.Display.Color = "sometimes" }},
		{"zero debounce", func(c *Config) { c.Watch.DebounceInterval = 0 }},
		{"cache without path", func(c *Config) { c.Cache.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Validate() = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SETTEXT_LENIENT", "true")
	t.Setenv("SETTEXT_LOG_LEVEL", "debug")

	cfg, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Lenient {
		t.Error("Lenient = false, want true from env")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug from env", cfg.Logging.Level)
	}
}
