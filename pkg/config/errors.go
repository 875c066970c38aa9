package config

import "errors"

// Common errors returned when loading configuration.
var (
	// ErrConfigNotFound is returned when a named config file does not
	// exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when a config file cannot be parsed.
	ErrInvalidYAML = errors.New("invalid YAML in config file")

	// ErrInvalidValue is returned when a configuration value is out of
	// range.
	ErrInvalidValue = errors.New("invalid configuration value")
)
