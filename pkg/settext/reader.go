package settext

import (
	"fmt"
	"io"
	"strings"

	"github.com/mseforge/settext/pkg/linedec"
	"github.com/mseforge/settext/pkg/message"
	"github.com/mseforge/settext/pkg/version"
)

// parseState tracks where the reader stands relative to the current
// key/value line.
type parseState int8

const (
	// stateOutside: no key consumed yet (only before the first read).
	stateOutside parseState = iota

	// stateEntered: positioned on a block's own key, not yet descended.
	stateEntered

	// stateHandled: the current key/value has been consumed.
	stateHandled

	// stateUnhandled: the next extraction re-delivers the previous
	// value (one-shot pushback, see Unhandle).
	stateUnhandled
)

// Reader is a single-pass reader for one structured-text document.
//
// A Reader binds to one input stream for its lifetime: construct it,
// drain the document top to bottom with nested EnterBlock/Handle/
// ExitBlock calls mirroring the expected schema, then discard it.
// It is not safe for concurrent use.
type Reader struct {
	input *linedec.LineReader
	cfg   Config

	// Current line and its derived fields. indent is -1 when there is
	// no line (end of input or after a hard error), which compares
	// below every real expected indent so block-exit loops terminate.
	line   string
	key    string
	value  string
	indent int

	// expectedIndent equals the nesting depth of blocks currently open.
	expectedIndent int

	state parseState

	lineNumber     int
	prevLineNumber int

	// previousValue is retained so an Unhandle rollback can re-deliver
	// it without re-reading the stream.
	previousValue string

	warnings []Diagnostic
	err      error

	fileAppVersion version.Version
}

// NewReader creates a Reader over input and consumes the version
// preamble.
//
// If the document declares a version newer than cfg.AppVersion, a
// non-fatal warning is queued to cfg.Messages. Hard errors hit during
// construction (such as invalid UTF-8 on the first line) are reported
// by Err, not returned here, so schema-driven parsing code can probe
// unconditionally.
func NewReader(input io.Reader, cfg Config) *Reader {
	if cfg.Messages == nil {
		cfg.Messages = message.Discard()
	}
	r := &Reader{
		input: linedec.New(input),
		cfg:   cfg,
		state: stateOutside,
	}
	r.moveNext()
	r.handleAppVersion()
	return r
}

// handleAppVersion consumes the mse_version preamble block.
func (r *Reader) handleAppVersion() {
	if r.EnterBlock("mse_version") {
		r.HandleVersion(&r.fileAppVersion)
		if r.cfg.AppVersion.Less(r.fileAppVersion) {
			r.cfg.Messages.Queue(message.Warning, fmt.Sprintf(
				"The file %s was made with a newer version of the application (%s).\nIt may not load correctly.",
				r.cfg.Filename, r.fileAppVersion))
		}
		r.ExitBlock()
	}
}

// Err returns the first hard parse error encountered, or nil.
//
// After a hard error the reader reports no further lines: every block
// probe fails and every handler is a no-op, so a schema-driven caller
// unwinds naturally and checks Err once at the end.
func (r *Reader) Err() error {
	return r.err
}

// Key returns the canonicalized key of the current line. Empty at end
// of input.
func (r *Reader) Key() string {
	return r.key
}

// LineNumber returns the 1-based number of the current line.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// FileAppVersion returns the version declared in the document preamble,
// or the zero version if there was none.
func (r *Reader) FileAppVersion() version.Version {
	return r.fileAppVersion
}

// EnterAnyBlock enters the block at the current position regardless of
// its key. It reports false, with no state change, if the current line
// is not at the expected indentation, so callers can probe for the
// presence of a nested block without consuming input.
func (r *Reader) EnterAnyBlock() bool {
	if r.state == stateEntered {
		r.moveNext() // on the key of the parent block, first move inside it
	}
	if r.indent != r.expectedIndent {
		return false
	}
	r.state = stateEntered
	r.expectedIndent++ // the indent inside the block must be at least this much
	return true
}

// EnterBlock enters the block at the current position if its key
// matches name (canonicalized compare). It reports false, with no
// state change, if the indentation or the key does not match.
func (r *Reader) EnterBlock(name string) bool {
	if r.state == stateEntered {
		r.moveNext() // on the key of the parent block, first move inside it
	}
	if r.indent != r.expectedIndent {
		return false
	}
	if r.key != canonicalName(name) {
		return false
	}
	r.state = stateEntered
	r.expectedIndent++ // the indent inside the block must be at least this much
	return true
}

// ExitBlock leaves the current block, discarding any remaining lines
// nested under it that the caller did not consume. This is the format's
// tolerance mechanism: unknown structure is skipped, not an error.
//
// Calling ExitBlock with no block open is a caller bug and panics.
func (r *Reader) ExitBlock() {
	if r.expectedIndent <= 0 {
		panic("settext: ExitBlock without matching EnterBlock")
	}
	r.expectedIndent--
	if r.state == stateUnhandled {
		panic("settext: ExitBlock with an unhandled value pending")
	}
	r.previousValue = ""
	if r.state == stateEntered {
		r.moveNext() // leave this key
	}
	// Dump the remainder of the block. In strict mode each discarded
	// key is reported; in lenient mode the skip is silent.
	for r.indent > r.expectedIndent {
		if !r.cfg.IgnoreInvalid && r.key != "" {
			r.warningHere(fmt.Sprintf("Unexpected key: '%s'", r.key))
		}
		r.moveNext()
	}
	r.state = stateHandled
}

// Unhandle marks the current value as not consumed, so the next
// extraction re-delivers it. Used for one-token lookahead by callers
// that must inspect a value before deciding how to decode it.
func (r *Reader) Unhandle() {
	if r.state != stateHandled {
		panic("settext: Unhandle before a value was handled")
	}
	r.state = stateUnhandled
}

// UnknownKey skips a key the caller does not recognize, along with
// everything nested under it. In lenient mode the skip is silent; in
// strict mode a warning is recorded.
func (r *Reader) UnknownKey() {
	if r.cfg.IgnoreInvalid {
		r.skipKey()
		return
	}
	if r.indent >= r.expectedIndent {
		r.warningHere(fmt.Sprintf("Unexpected key: '%s'", r.key))
		r.skipKey()
	}
	// Otherwise this may be a nameless value, which the caller still
	// consumes without an ExitBlock to move past its own key.
}

func (r *Reader) skipKey() {
	for {
		r.moveNext()
		if r.indent <= r.expectedIndent {
			return
		}
	}
}

// moveNext advances to the next meaningful line, skipping blanks and
// comments. At end of input indent becomes -1.
func (r *Reader) moveNext() {
	if r.err != nil {
		return
	}
	r.prevLineNumber = r.lineNumber
	r.state = stateHandled
	r.key = ""
	r.indent = -1 // if no line is read it never has the expected indentation
	for r.key == "" && !r.input.EOF() {
		if !r.readLine(false) {
			return
		}
	}
	if r.key == "" && r.input.EOF() {
		r.lineNumber++
		r.indent = -1
	}
}

// readLine reads and classifies one line into key, value and indent.
// inString suppresses anomaly warnings and repairs while reassembling
// multi-line text, where the content is not made of keys at all.
// Reports false on a hard error.
func (r *Reader) readLine(inString bool) bool {
	if r.err != nil {
		return false
	}
	r.lineNumber++
	line, err := r.input.ReadLine()
	if err != nil {
		r.fail(&ParseError{Line: r.lineNumber, Err: err})
		return false
	}
	r.line = line

	r.indent = 0
	for r.indent < len(line) && line[r.indent] == '\t' {
		r.indent++
	}

	if strings.Trim(line, " \t") == "" || line[r.indent] == '#' {
		// Blank line or comment.
		r.key = ""
		return true
	}

	pos := strings.IndexByte(line[r.indent:], ':')
	var key string
	if pos < 0 {
		key = line[r.indent:]
	} else {
		key = line[r.indent : r.indent+pos]
	}

	if !r.cfg.IgnoreInvalid && !inString && strings.HasPrefix(key, " ") {
		r.warningHere(fmt.Sprintf("key: '%s' starts with a space; only use TABs for indentation!", key))
		// Try to fix up: 8 spaces is a tab.
		for strings.HasPrefix(key, "        ") {
			key = key[8:]
			r.indent++
		}
	}
	r.key = canonicalName(strings.Trim(key, " \t"))

	if pos < 0 {
		if !r.cfg.IgnoreInvalid && !inString {
			r.warningHere("Missing ':'")
		}
		r.value = ""
	} else {
		r.value = strings.TrimLeft(line[r.indent+pos+1:], " \t")
	}
	if r.key == "" && pos >= 0 {
		// There was a colon, so this is a named (if empty-named) key,
		// not a blank line. The single space keeps the distinction.
		r.key = " "
	}
	return true
}

// fail records the first hard parse error and stops line delivery.
func (r *Reader) fail(err error) {
	if r.err != nil {
		return
	}
	r.err = err
	r.key = ""
	r.value = ""
	r.indent = -1
}

// Warning records a warning attributed to the line the last value was
// read from.
func (r *Reader) Warning(msg string) {
	r.warningLine(msg, 0, true)
}

// warningHere records a warning attributed to the current line.
func (r *Reader) warningHere(msg string) {
	r.warningLine(msg, 0, false)
}

func (r *Reader) warningLine(msg string, delta int, onPreviousLine bool) {
	ln := r.lineNumber
	if onPreviousLine {
		ln = r.prevLineNumber
	}
	r.warnings = append(r.warnings, Diagnostic{Line: ln + delta, Text: msg})
}

// Warnings returns the accumulated diagnostics without clearing them.
func (r *Reader) Warnings() []Diagnostic {
	return r.warnings
}

// ShowWarnings flushes all accumulated warnings as one aggregated
// message to the configured sink. A no-op if there are none.
func (r *Reader) ShowWarnings() {
	if len(r.warnings) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString("Warnings while reading file:\n")
	b.WriteString(r.cfg.Filename)
	for _, w := range r.warnings {
		fmt.Fprintf(&b, "\nOn line %d: \t%s", w.Line, w.Text)
	}
	r.cfg.Messages.Queue(message.Warning, b.String())
	r.warnings = r.warnings[:0]
}
