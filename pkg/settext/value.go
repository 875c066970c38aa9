package settext

import "strings"

// getValue extracts the raw text of the current value.
//
// Three paths:
//   - after Unhandle, the cached previous value is replayed without
//     touching the stream;
//   - a non-empty inline value is cached and the reader advances;
//   - an empty inline value means a multi-line block: successive lines
//     indented at least expectedIndent are joined with newlines, each
//     stripped of its expectedIndent-tab prefix.
//
// Inside a multi-line block, blank or under-indented lines become
// pending newlines: a run followed by a properly indented line inserts
// that many embedded newlines, a run that ends the block does not.
//
// Reports false after a hard error. Extracting a value that was already
// handled is a caller bug and panics.
func (r *Reader) getValue() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.state == stateHandled {
		panic("settext: value extracted twice for one key")
	}

	if r.state == stateUnhandled {
		r.state = stateHandled
		return r.previousValue, true
	}

	if r.value != "" {
		r.previousValue = r.value
		r.moveNext()
		if r.err != nil {
			return "", false
		}
		return r.previousValue, true
	}

	// A multi-line value.
	r.previousValue = ""
	var b strings.Builder
	pendingNewlines := 0
	if !r.readLine(true) {
		return "", false
	}
	r.prevLineNumber = r.lineNumber
	for r.indent >= r.expectedIndent && !r.input.EOF() {
		for ; pendingNewlines > 0; pendingNewlines-- {
			b.WriteByte('\n')
		}
		b.WriteString(r.line[r.expectedIndent:]) // strip expected indent
		for {
			if !r.readLine(true) {
				return "", false
			}
			pendingNewlines++
			// Skip blank lines that are not indented enough.
			if !(strings.Trim(r.line, " \t") == "" && r.indent < r.expectedIndent && !r.input.EOF()) {
				break
			}
		}
	}
	r.previousValue = b.String()

	// moveNext, but without the initial readLine: the cursor is already
	// on the first line past the block and must not advance twice.
	r.state = stateHandled
	for r.key == "" && !r.input.EOF() {
		if !r.readLine(false) {
			return "", false
		}
	}
	if r.key == "" && r.input.EOF() {
		r.lineNumber++
		r.indent = -1
	}
	if r.indent >= r.expectedIndent {
		r.warningLine("Blank line or comment in text block, that is insufficiently indented.\n"+
			"\t\tEither indent the comment/blank line, or add a 'key:' after it.", -1, false)
	}
	return r.previousValue, true
}
