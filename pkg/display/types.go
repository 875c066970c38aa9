// Package display provides output formatting for lint reports.
//
// It supports multiple output formats (table, JSON, simple text),
// optional ANSI coloring of report statuses, and wrapping of long
// diagnostics to the terminal width.
package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mseforge/settext/pkg/lint"
)

// Format represents an output format.
type Format string

const (
	// FormatTable displays reports in a formatted table.
	FormatTable Format = "table"

	// FormatJSON displays reports as JSON.
	FormatJSON Format = "json"

	// FormatSimple displays reports in simple text format.
	FormatSimple Format = "simple"
)

// Formatter formats and displays lint reports.
type Formatter interface {
	// FormatReport formats a single report in full, including its
	// warnings.
	//
	// Parameters:
	//   - w: Output writer
	//   - report: Report to format
	//
	// Returns error if formatting fails.
	FormatReport(w io.Writer, report *lint.Report) error

	// FormatSummary formats a one-line-per-file overview of several
	// reports.
	//
	// Parameters:
	//   - w: Output writer
	//   - reports: Reports to summarize
	//
	// Returns error if formatting fails.
	FormatSummary(w io.Writer, reports []*lint.Report) error
}

// Config contains formatter configuration.
type Config struct {
	// Format specifies the output format.
	// Default: FormatTable.
	Format Format

	// Color controls ANSI coloring: "auto", "always" or "never".
	// Default: "auto" (color when stdout is a terminal).
	Color string

	// Width is the wrapping width for diagnostics. Zero means detect
	// from the terminal, falling back to 80.
	Width int

	// Compact enables compact output (less whitespace).
	// Default: false.
	Compact bool
}

// colorEnabled resolves the Color mode against the environment.
func (c Config) colorEnabled() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// wrapWidth resolves the effective wrapping width.
func (c Config) wrapWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 80
}

// palette holds the status colorers for one formatter.
type palette struct {
	ok   func(format string, a ...interface{}) string
	warn func(format string, a ...interface{}) string
	fail func(format string, a ...interface{}) string
}

// newPalette builds a palette, forcing color on or off.
func newPalette(enabled bool) palette {
	mk := func(attr color.Attribute) func(string, ...interface{}) string {
		c := color.New(attr)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprintf
	}
	return palette{
		ok:   mk(color.FgGreen),
		warn: mk(color.FgYellow),
		fail: mk(color.FgRed),
	}
}

// status renders the report state as a colored word.
func (p palette) status(report *lint.Report) string {
	switch {
	case report.Error != "":
		return p.fail("ERROR")
	case len(report.Warnings) > 0:
		return p.warn("WARN")
	default:
		return p.ok("OK")
	}
}
