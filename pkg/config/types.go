// Package config provides configuration for the settext command line
// tools.
//
// Configuration is loaded with the following precedence:
// 1. Environment variables
// 2. Configuration file
// 3. Default values
//
// Example usage:
//
//	cfg, err := config.NewLoader("").Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config

import "time"

// Config represents the complete tool configuration.
type Config struct {
	// Lenient enables lenient parsing: indentation anomalies are
	// repaired silently and unknown structure is skipped without
	// warnings.
	Lenient bool `yaml:"lenient"`

	// Cache settings.
	Cache CacheConfig `yaml:"cache"`

	// Watch settings.
	Watch WatchConfig `yaml:"watch"`

	// Display settings.
	Display DisplayConfig `yaml:"display"`

	// Logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig controls the lint result cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	Enabled bool `yaml:"enabled"`

	// Path is the bolt database file location.
	Path string `yaml:"path"`
}

// WatchConfig controls the file watcher.
type WatchConfig struct {
	// DebounceInterval batches rapid changes to one file.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions lists the file extensions to lint on change.
	Extensions []string `yaml:"extensions"`
}

// DisplayConfig controls report output.
type DisplayConfig struct {
	// Format is the report format (table, simple, json).
	Format string `yaml:"format"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the log output format (text, json).
	Format string `yaml:"format"`

	// Output is the log destination (stdout, stderr, or a file path).
	Output string `yaml:"output"`
}
