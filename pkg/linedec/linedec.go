// Package linedec provides low-level line decoding for settext
// documents.
//
// It turns a raw byte stream into a lazy, forward-only sequence of
// UTF-8 text lines: an optional byte order mark is stripped from the
// start of the stream, and "\n", "\r\n" and lone "\r" are all accepted
// as line terminators.
//
// Example usage:
//
//	lr := linedec.New(file)
//	for !lr.EOF() {
//	    line, err := lr.ReadLine()
//	    if err != nil {
//	        return err
//	    }
//	    process(line)
//	}
package linedec

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// LineReader reads decoded text lines from a byte stream.
//
// A LineReader is bound to one stream for its lifetime; there is no
// seeking or restarting.
type LineReader struct {
	br  *bufio.Reader
	buf []byte // reused between calls; lines are usually short
	eof bool
}

// New creates a LineReader over r.
//
// If the stream starts with a UTF-8 byte order mark it is consumed;
// otherwise the peeked bytes are left in place.
func New(r io.Reader) *LineReader {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return &LineReader{br: br, buf: make([]byte, 0, 256)}
}

// EOF reports whether a previous read attempt reached the end of the
// stream.
//
// The flag is only set when a read actually hits the end: a final line
// without a trailing terminator is delivered by ReadLine with EOF
// already true, while a stream ending in a terminator reports EOF on
// the following (empty) read. Callers loop on !EOF() and must consume
// the line returned alongside the transition.
func (l *LineReader) EOF() bool {
	return l.eof
}

// ReadLine reads and decodes one line, consuming its terminator.
//
// Returns ErrInvalidUTF8 if the line is not valid UTF-8; that error is
// not recoverable, the stream position is undefined afterwards.
func (l *LineReader) ReadLine() (string, error) {
	l.buf = l.buf[:0]
	for {
		c, err := l.br.ReadByte()
		if err != nil {
			l.eof = true
			break
		}
		if c == '\n' {
			break
		}
		if c == '\r' {
			c, err = l.br.ReadByte()
			if err != nil {
				l.eof = true
			} else if c != '\n' {
				// \r not followed by \n: lone carriage return terminator.
				_ = l.br.UnreadByte()
			}
			break
		}
		l.buf = append(l.buf, c)
	}
	return l.decode()
}

// ReadAll reads the remainder of the stream as one value, without
// splitting on line terminators.
//
// Used for preamble scanning where the caller wants the raw tail.
func (l *LineReader) ReadAll() (string, error) {
	l.buf = l.buf[:0]
	for {
		c, err := l.br.ReadByte()
		if err != nil {
			l.eof = true
			break
		}
		l.buf = append(l.buf, c)
	}
	return l.decode()
}

func (l *LineReader) decode() (string, error) {
	if !utf8.Valid(l.buf) {
		return "", ErrInvalidUTF8
	}
	return string(l.buf), nil
}
