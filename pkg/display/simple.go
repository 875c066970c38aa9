package display

import (
	"fmt"
	"io"

	"github.com/mseforge/settext/pkg/lint"
)

// simpleFormatter formats output as simple text.
type simpleFormatter struct {
	config Config
	colors palette
}

// FormatReport implements Formatter.FormatReport.
func (f *simpleFormatter) FormatReport(w io.Writer, report *lint.Report) error {
	if _, err := fmt.Fprintf(w, "%s: %s | Keys: %s | Depth: %d | Warnings: %d\n",
		report.Path,
		f.colors.status(report),
		formatNumber(report.Keys),
		report.MaxDepth,
		len(report.Warnings)); err != nil {
		return err
	}

	for _, note := range report.Notes {
		if _, err := fmt.Fprintf(w, "  %s\n", note); err != nil {
			return err
		}
	}
	for _, warning := range report.Warnings {
		if _, err := fmt.Fprintf(w, "  line %d: %s\n", warning.Line, warning.Text); err != nil {
			return err
		}
	}
	if report.Error != "" {
		if _, err := fmt.Fprintf(w, "  error: %s\n", report.Error); err != nil {
			return err
		}
	}

	return nil
}

// FormatSummary implements Formatter.FormatSummary.
func (f *simpleFormatter) FormatSummary(w io.Writer, reports []*lint.Report) error {
	for _, report := range reports {
		if _, err := fmt.Fprintf(w, "%s: %s (%d keys, %d warnings)\n",
			report.Path,
			f.colors.status(report),
			report.Keys,
			len(report.Warnings)); err != nil {
			return err
		}
	}

	return nil
}
