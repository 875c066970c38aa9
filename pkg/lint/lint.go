// Package lint checks settext documents without a schema.
//
// The reader is normally driven by code that knows the expected
// document structure. The linter instead walks whatever structure is
// present, entering every block it finds, so that every line is
// classified and the reader's anomaly detection (space indentation,
// missing separators, invalid UTF-8) runs over the whole file.
//
// The walk is heuristic by design: without a schema, indented lines
// under a key are treated as nested blocks even when the application
// would read them as multi-line text. Lenient mode suppresses the
// warnings that heuristic triggers on free text.
package lint

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mseforge/settext/pkg/logger"
	"github.com/mseforge/settext/pkg/message"
	"github.com/mseforge/settext/pkg/settext"
	"github.com/mseforge/settext/pkg/version"
)

// Warning is one diagnostic tied to a line.
type Warning struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Report is the result of linting one document.
type Report struct {
	// Path identifies the document.
	Path string `json:"path"`

	// FileVersion is the version declared in the preamble, if any.
	FileVersion string `json:"file_version,omitempty"`

	// Keys is the number of keys walked.
	Keys int `json:"keys"`

	// MaxDepth is the deepest block nesting seen.
	MaxDepth int `json:"max_depth"`

	// Size is the document size in bytes, when known.
	Size int64 `json:"size_bytes,omitempty"`

	// Duration is how long the lint took.
	Duration time.Duration `json:"duration_ns"`

	// Warnings lists recoverable anomalies.
	Warnings []Warning `json:"warnings,omitempty"`

	// Notes lists non-fatal messages queued during parsing, such as a
	// newer file version.
	Notes []string `json:"notes,omitempty"`

	// Error is the hard parse error that stopped the lint, if any.
	Error string `json:"error,omitempty"`
}

// Clean reports whether the document produced no diagnostics at all.
func (r *Report) Clean() bool {
	return r.Error == "" && len(r.Warnings) == 0 && len(r.Notes) == 0
}

// Linter lints settext documents.
type Linter interface {
	// LintFile lints the document at path.
	//
	// Returns an error only when the file cannot be read; parse
	// problems are part of the Report.
	LintFile(path string) (*Report, error)

	// Lint lints a document from a stream. name is used in the report
	// and diagnostics only.
	Lint(input io.Reader, name string) *Report
}

// Config contains linter configuration.
type Config struct {
	// Lenient enables lenient parsing mode.
	Lenient bool

	// AppVersion is compared against the document preamble.
	AppVersion version.Version
}

// linter implements the Linter interface.
type linter struct {
	cfg    Config
	logger logger.Logger
}

// New creates a Linter.
func New(cfg Config, log logger.Logger) Linter {
	return &linter{cfg: cfg, logger: log}
}

// LintFile implements Linter.LintFile.
func (l *linter) LintFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	report := l.Lint(f, path)
	if info, statErr := f.Stat(); statErr == nil {
		report.Size = info.Size()
	}
	return report, nil
}

// Lint implements Linter.Lint.
func (l *linter) Lint(input io.Reader, name string) *Report {
	start := time.Now()
	queue := message.NewQueue()
	r := settext.NewReader(input, settext.Config{
		Filename:      name,
		IgnoreInvalid: l.cfg.Lenient,
		AppVersion:    l.cfg.AppVersion,
		Messages:      queue,
	})

	report := &Report{Path: name}
	if v := r.FileAppVersion(); !v.IsZero() {
		report.FileVersion = v.String()
	}

	l.walk(r, 1, report)

	for _, d := range r.Warnings() {
		report.Warnings = append(report.Warnings, Warning{Line: d.Line, Text: d.Text})
	}
	for _, m := range queue.Drain() {
		report.Notes = append(report.Notes, m.Text)
	}
	if err := r.Err(); err != nil {
		report.Error = err.Error()
	}
	report.Duration = time.Since(start)

	l.logger.Debug("lint finished",
		"path", name,
		"keys", report.Keys,
		"warnings", len(report.Warnings),
		"error", report.Error)

	return report
}

// walk enters every block at the current level, recursing into each.
func (l *linter) walk(r *settext.Reader, depth int, report *Report) {
	for r.EnterAnyBlock() {
		report.Keys++
		if depth > report.MaxDepth {
			report.MaxDepth = depth
		}
		l.walk(r, depth+1, report)
		r.ExitBlock()
	}
}
