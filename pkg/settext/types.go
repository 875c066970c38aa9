package settext

import (
	"strconv"
	"strings"

	"github.com/mseforge/settext/pkg/message"
	"github.com/mseforge/settext/pkg/version"
)

// Config contains reader configuration.
type Config struct {
	// Filename is used in warning and error text only.
	Filename string

	// IgnoreInvalid enables lenient mode: indentation and separator
	// anomalies are repaired silently and unknown keys are skipped
	// without a warning.
	IgnoreInvalid bool

	// AppVersion is the version of the running application, compared
	// against the version declared in the document preamble.
	AppVersion version.Version

	// Messages receives warnings that must surface to the user without
	// aborting parsing. Defaults to message.Discard().
	Messages message.Sink
}

// Diagnostic is one accumulated warning, tied to a line number.
type Diagnostic struct {
	Line int
	Text string
}

// TriBool is a three-valued boolean.
type TriBool int8

const (
	// False is the tri-state false value.
	False TriBool = iota

	// True is the tri-state true value.
	True

	// Indeterminate is the unset tri-state value.
	Indeterminate
)

// TriBoolOf converts a bool to the corresponding TriBool.
func TriBoolOf(b bool) TriBool {
	if b {
		return True
	}
	return False
}

// String returns "true", "false" or "maybe".
func (t TriBool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "maybe"
	}
}

// Vector2D is a point or size in card coordinates, stored textually as
// "(x,y)".
type Vector2D struct {
	X float64
	Y float64
}

// String returns the textual form consumed by the reader.
func (v Vector2D) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(v.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(v.Y))
	b.WriteByte(')')
	return b.String()
}

// LocalFileName is a reference to a file inside the containing package.
type LocalFileName string

// FileNameFromReadString decodes a filename reference from a document.
//
// Backslash separators from files written on Windows are normalized to
// forward slashes.
func FileNameFromReadString(s string) LocalFileName {
	return LocalFileName(strings.ReplaceAll(strings.TrimSpace(s), "\\", "/"))
}

// ToWriteString returns the form written into a document.
func (f LocalFileName) ToWriteString() string {
	return string(f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// canonicalName converts a key to canonical name form: lowercase with
// spaces replaced by underscores. Keys are written to files with spaces
// ("mse version") and compared canonically ("mse_version").
func canonicalName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if c == ' ' {
			b.WriteByte('_')
		} else if c >= 'A' && c <= 'Z' {
			b.WriteByte(byte(c) + ('a' - 'A'))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// displayName is the inverse of canonicalName, used when writing.
func displayName(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
