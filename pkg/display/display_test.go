package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mseforge/settext/pkg/lint"
)

func sampleReport() *lint.Report {
	return &lint.Report{
		Path:        "sets/demo.mse-set",
		FileVersion: "2.0.0",
		Keys:        42,
		MaxDepth:    3,
		Size:        2048,
		Warnings: []lint.Warning{
			{Line: 7, Text: "Missing ':'"},
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		want   string // Type name
	}{
		{
			name:   "default format (table)",
			config: Config{},
			want:   "*display.tableFormatter",
		},
		{
			name:   "table format",
			config: Config{Format: FormatTable},
			want:   "*display.tableFormatter",
		},
		{
			name:   "json format",
			config: Config{Format: FormatJSON},
			want:   "*display.jsonFormatter",
		},
		{
			name:   "simple format",
			config: Config{Format: FormatSimple},
			want:   "*display.simpleFormatter",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			formatter := New(tt.config)
			if formatter == nil {
				t.Fatal("New() returned nil")
			}

			got := fmt.Sprintf("%T", formatter)
			if got != tt.want {
				t.Errorf("New() type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableFormatter_FormatReport(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatTable, Color: "never", Width: 80})

	var buf bytes.Buffer
	if err := formatter.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"sets/demo.mse-set",
		"Status", "WARN",
		"Keys", "42",
		"Max Depth", "3",
		"File Version", "2.0.0",
		"2.0 KiB",
		"line 7: Missing ':'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output contains ANSI escapes despite color=never")
	}
}

func TestTableFormatter_FormatSummary(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatTable, Color: "never", Width: 80})

	clean := &lint.Report{Path: "a.mse-set", Keys: 3, MaxDepth: 1}
	broken := &lint.Report{Path: "b.mse-set", Error: "Error while parsing on line 2"}

	var buf bytes.Buffer
	if err := formatter.FormatSummary(&buf, []*lint.Report{clean, broken}); err != nil {
		t.Fatalf("FormatSummary() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Lint Summary", "a.mse-set", "OK", "b.mse-set", "ERROR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_EmptySummary(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatTable, Color: "never"})

	var buf bytes.Buffer
	if err := formatter.FormatSummary(&buf, nil); err != nil {
		t.Fatalf("FormatSummary() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No data") {
		t.Errorf("empty summary output = %q, want No data", buf.String())
	}
}

func TestSimpleFormatter_FormatReport(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatSimple, Color: "never"})

	var buf bytes.Buffer
	if err := formatter.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "sets/demo.mse-set: WARN") {
		t.Errorf("output missing status line:\n%s", out)
	}
	if !strings.Contains(out, "line 7: Missing ':'") {
		t.Errorf("output missing warning line:\n%s", out)
	}
}

func TestJSONFormatter_FormatReport(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatJSON})

	var buf bytes.Buffer
	if err := formatter.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}

	var decoded lint.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Keys != 42 || len(decoded.Warnings) != 1 {
		t.Errorf("decoded report = %+v", decoded)
	}
}

func TestColorAlways(t *testing.T) {
	t.Parallel()

	formatter := New(Config{Format: FormatSimple, Color: "always"})

	var buf bytes.Buffer
	if err := formatter.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("output has no ANSI escapes despite color=always")
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"break on space", "alpha beta gamma", 11, []string{"alpha beta", "gamma"}},
		{"no space", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"zero width", "anything", 0, []string{"anything"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wrap(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrap() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("wrap()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
