package linedec

import "errors"

// ErrInvalidUTF8 is returned when a line contains bytes that are not a
// valid UTF-8 sequence. It is not recoverable.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
