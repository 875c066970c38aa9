package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from a file with environment overrides.
type Loader interface {
	// Load loads configuration, merging defaults, the config file (if
	// any) and environment variables, and validates the result.
	Load() (*Config, error)

	// LoadFromFile loads configuration from a specific file on top of
	// the defaults.
	LoadFromFile(path string) (*Config, error)
}

// loader implements the Loader interface.
type loader struct {
	configPath string
}

// NewLoader creates a configuration loader.
//
// If configPath is empty, the loader searches ./settext.yaml and then
// ~/.config/settext/config.yaml.
func NewLoader(configPath string) Loader {
	return &loader{configPath: configPath}
}

// Load implements Loader.Load.
func (l *loader) Load() (*Config, error) {
	configPath := l.configPath
	if configPath == "" {
		configPath = l.findConfigFile()
	}

	cfg := Default()
	if configPath != "" {
		fileCfg, err := l.LoadFromFile(configPath)
		if err != nil {
			// An explicitly named file must load; a discovered one may
			// be skipped.
			if l.configPath != "" {
				return nil, err
			}
		} else {
			cfg = fileCfg
		}
	}

	l.applyEnvVars(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile implements Loader.LoadFromFile.
//
// Absent fields keep their default values.
func (l *loader) LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return cfg, nil
}

// findConfigFile searches standard locations, returning "" if no
// config file exists.
func (l *loader) findConfigFile() string {
	candidates := []string{
		"./settext.yaml",
		defaultConfigPath(),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyEnvVars overrides configuration from the environment.
func (l *loader) applyEnvVars(cfg *Config) {
	if v := os.Getenv("SETTEXT_LENIENT"); v != "" {
		cfg.Lenient = v == "1" || v == "true"
	}
	if v := os.Getenv("SETTEXT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SETTEXT_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("SETTEXT_DISPLAY_FORMAT"); v != "" {
		cfg.Display.Format = v
	}
}
