package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mseforge/settext/pkg/lint"
)

// tableFormatter formats output as tables.
type tableFormatter struct {
	config Config
	colors palette
}

// FormatReport implements Formatter.FormatReport.
func (f *tableFormatter) FormatReport(w io.Writer, report *lint.Report) error {
	if err := writeHeader(w, report.Path, f.config.Compact); err != nil {
		return err
	}

	rows := [][]string{
		{"Status", f.colors.status(report)},
		{"Keys", formatNumber(report.Keys)},
		{"Max Depth", formatNumber(report.MaxDepth)},
	}

	if report.FileVersion != "" {
		rows = append(rows, []string{"File Version", report.FileVersion})
	}
	if report.Size > 0 {
		rows = append(rows, []string{"Size", formatBytes(report.Size)})
	}

	if err := f.writeTable(w, []string{"Metric", "Value"}, rows); err != nil {
		return err
	}

	width := f.config.wrapWidth()
	for _, note := range report.Notes {
		for _, line := range wrap(note, width) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	for _, warning := range report.Warnings {
		text := f.colors.warn("line %d:", warning.Line) + " " + warning.Text
		for _, line := range wrap(text, width) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if report.Error != "" {
		if _, err := fmt.Fprintln(w, f.colors.fail("error:")+" "+report.Error); err != nil {
			return err
		}
	}

	return nil
}

// FormatSummary implements Formatter.FormatSummary.
func (f *tableFormatter) FormatSummary(w io.Writer, reports []*lint.Report) error {
	if err := writeHeader(w, "Lint Summary", f.config.Compact); err != nil {
		return err
	}

	header := []string{"File", "Keys", "Depth", "Warnings", "Status"}

	rows := make([][]string, len(reports))
	for i, report := range reports {
		rows[i] = []string{
			report.Path,
			formatNumber(report.Keys),
			formatNumber(report.MaxDepth),
			formatNumber(len(report.Warnings)),
			f.colors.status(report),
		}
	}

	return f.writeTable(w, header, rows)
}

// writeTable writes a formatted table.
func (f *tableFormatter) writeTable(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No data")
		return err
	}

	// Calculate column widths. ANSI escapes would skew the width of
	// colored cells, so those columns size to their header instead.
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && !strings.Contains(cell, "\x1b") && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Write header.
	if err := f.writeRow(w, header, widths); err != nil {
		return err
	}

	// Write separator.
	if !f.config.Compact {
		separator := make([]string, len(header))
		for i, width := range widths {
			separator[i] = strings.Repeat("-", width)
		}
		if err := f.writeRow(w, separator, widths); err != nil {
			return err
		}
	}

	// Write rows.
	for _, row := range rows {
		if err := f.writeRow(w, row, widths); err != nil {
			return err
		}
	}

	// Add spacing.
	if !f.config.Compact {
		_, err := fmt.Fprintln(w)
		return err
	}

	return nil
}

// writeRow writes a single table row.
func (f *tableFormatter) writeRow(w io.Writer, cells []string, widths []int) error {
	for i, cell := range cells {
		if i > 0 {
			sep := "  "
			if f.config.Compact {
				sep = " "
			}
			if _, err := fmt.Fprint(w, sep); err != nil {
				return err
			}
		}

		format := fmt.Sprintf("%%-%ds", widths[i])
		if _, err := fmt.Fprintf(w, format, cell); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
