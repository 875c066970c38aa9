package settext

import "fmt"

// EnumReader decodes a one-of-N textual enumeration. The caller probes
// each candidate with Case and then asks for a warning or a hard error
// if nothing matched, depending on whether the enum has a safe default.
//
// Example usage:
//
//	e := r.Enum()
//	switch {
//	case e.Case("left"):
//	    align = AlignLeft
//	case e.Case("right"):
//	    align = AlignRight
//	}
//	e.WarnIfNotDone()
type EnumReader struct {
	reader *Reader
	read   string // the raw value from the document
	first  string // first candidate tried, for error messages
	done   bool   // whether any candidate matched
}

// Enum extracts the current value and returns an EnumReader over it.
func (r *Reader) Enum() *EnumReader {
	var s string
	r.HandleString(&s)
	return &EnumReader{reader: r, read: s}
}

// Case reports whether the value matches the candidate literal
// exactly. At most one Case per EnumReader matches.
func (e *EnumReader) Case(name string) bool {
	if e.first == "" {
		e.first = name
	}
	if !e.done && e.read == name {
		e.done = true
		return true
	}
	return false
}

// Value returns the raw value read from the document.
func (e *EnumReader) Value() string {
	return e.read
}

// Done reports whether any candidate matched.
func (e *EnumReader) Done() bool {
	return e.done
}

func (e *EnumReader) notDoneMessage() string {
	if e.first == "" {
		panic("settext: EnumReader finished without any candidate")
	}
	return fmt.Sprintf("Unrecognized value: '%s'; expected a value like '%s'", e.read, e.first)
}

// WarnIfNotDone records a warning if no candidate matched. Use when the
// enum field has a safe default.
func (e *EnumReader) WarnIfNotDone() {
	if !e.done {
		e.reader.Warning(e.notDoneMessage())
	}
}

// ErrorIfNotDone raises a hard parse error if no candidate matched. Use
// when there is no safe default.
func (e *EnumReader) ErrorIfNotDone() {
	if !e.done {
		e.reader.fail(&ParseError{Line: e.reader.prevLineNumber, Msg: e.notDoneMessage()})
	}
}
