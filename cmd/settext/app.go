package main

import (
	"fmt"

	"github.com/mseforge/settext/pkg/config"
	"github.com/mseforge/settext/pkg/display"
	"github.com/mseforge/settext/pkg/lint"
	"github.com/mseforge/settext/pkg/logger"
	versionpkg "github.com/mseforge/settext/pkg/version"
)

// appVersion is the tool version compared against document preambles.
// A document declaring a newer version gets a compatibility note.
var appVersion = versionpkg.Version{Major: 2, Minor: 1, Patch: 2}

// app bundles the pieces every command needs.
type app struct {
	cfg       *config.Config
	logger    logger.Logger
	linter    lint.Linter
	formatter display.Formatter
}

// newApp loads configuration, applies command-line overrides and wires
// up the linter and formatter.
func newApp() (*app, error) {
	cfg, err := config.NewLoader(flagConfig).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if flagLenient {
		cfg.Lenient = true
	}
	if flagFormat != "" {
		cfg.Display.Format = flagFormat
	}
	if flagColor != "" {
		cfg.Display.Color = flagColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return &app{
		cfg:    cfg,
		logger: log,
		linter: lint.New(lint.Config{
			Lenient:    cfg.Lenient,
			AppVersion: appVersion,
		}, log),
		formatter: display.New(display.Config{
			Format:  display.Format(cfg.Display.Format),
			Color:   cfg.Display.Color,
			Compact: flagCompact,
		}),
	}, nil
}
