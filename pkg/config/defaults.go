package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Lenient: false,
		Cache: CacheConfig{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Watch: WatchConfig{
			DebounceInterval: 200 * time.Millisecond,
			Extensions:       []string{".mse-set", ".mse-game", ".mse-style", ".mse-symbol"},
		},
		Display: DisplayConfig{
			Format: "table",
			Color:  "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Display.Format {
	case "table", "simple", "json":
	default:
		return fmt.Errorf("%w: display format %q", ErrInvalidValue, c.Display.Format)
	}

	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: display color %q", ErrInvalidValue, c.Display.Color)
	}

	if c.Watch.DebounceInterval <= 0 {
		return fmt.Errorf("%w: debounce interval must be positive", ErrInvalidValue)
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("%w: cache enabled without a path", ErrInvalidValue)
	}

	return nil
}

// defaultCachePath returns the default bolt database location.
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "settext-lint.db"
	}
	return filepath.Join(dir, "settext", "lint.db")
}

// defaultConfigPath returns the per-user config file location.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "settext", "config.yaml")
}
