package settext

import "fmt"

// ParseError is a hard, unrecoverable parse error. Once one occurs the
// reader delivers no further lines; the caller should abandon loading
// the document.
type ParseError struct {
	// Line is the 1-based line number the error was detected on.
	Line int

	// Msg describes the problem. May be empty when Err is set.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s on line %d", msg, e.Line)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
