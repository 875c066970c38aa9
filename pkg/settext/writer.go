package settext

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mseforge/settext/pkg/version"
)

// Writer is the companion serializer: it emits documents the Reader
// reads back value-for-value. Keys are written in display form
// (underscores as spaces); values with embedded newlines or leading
// whitespace become indented multi-line blocks, with embedded blank
// lines written unindented.
//
// Write errors are sticky and reported by Flush.
type Writer struct {
	w      *bufio.Writer
	indent int
	err    error
}

// NewWriter creates a Writer over w and emits the byte order mark and
// the version preamble.
func NewWriter(w io.Writer, appVersion version.Version) *Writer {
	wr := &Writer{w: bufio.NewWriter(w)}
	wr.writeRaw("\xEF\xBB\xBF")
	wr.WriteString("mse_version", appVersion.String())
	return wr
}

// EnterBlock opens a nested block with the given key.
func (w *Writer) EnterBlock(name string) {
	w.writeIndent()
	w.writeRaw(displayName(name))
	w.writeRaw(":\n")
	w.indent++
}

// ExitBlock closes the innermost open block.
func (w *Writer) ExitBlock() {
	if w.indent <= 0 {
		panic("settext: ExitBlock without matching EnterBlock")
	}
	w.indent--
}

// WriteString writes one key/value line, or a multi-line block when the
// value needs one.
func (w *Writer) WriteString(name, value string) {
	w.writeIndent()
	w.writeRaw(displayName(name))
	w.writeRaw(":")
	if value == "" {
		w.writeRaw("\n")
		return
	}
	if !strings.ContainsRune(value, '\n') && value[0] != ' ' && value[0] != '\t' {
		w.writeRaw(" ")
		w.writeRaw(value)
		w.writeRaw("\n")
		return
	}
	// Multi-line block: each line one level deeper than the key, blank
	// lines bare so the reader's pending-newline path restores them.
	w.writeRaw("\n")
	for _, line := range strings.Split(value, "\n") {
		if line == "" {
			w.writeRaw("\n")
			continue
		}
		for i := 0; i <= w.indent; i++ {
			w.writeRaw("\t")
		}
		w.writeRaw(line)
		w.writeRaw("\n")
	}
}

// WriteInt writes an integer value.
func (w *Writer) WriteInt(name string, value int) {
	w.WriteString(name, strconv.Itoa(value))
}

// WriteUint writes a non-negative integer value.
func (w *Writer) WriteUint(name string, value uint) {
	w.WriteString(name, strconv.FormatUint(uint64(value), 10))
}

// WriteFloat writes a floating point value.
func (w *Writer) WriteFloat(name string, value float64) {
	w.WriteString(name, formatFloat(value))
}

// WriteBool writes "true" or "false".
func (w *Writer) WriteBool(name string, value bool) {
	if value {
		w.WriteString(name, "true")
	} else {
		w.WriteString(name, "false")
	}
}

// WriteTriBool writes "true", "false" or "maybe".
func (w *Writer) WriteTriBool(name string, value TriBool) {
	w.WriteString(name, value.String())
}

// WriteTime writes a date/time value in the layout the reader accepts.
func (w *Writer) WriteTime(name string, value time.Time) {
	w.WriteString(name, value.Format(timeLayouts[0]))
}

// WriteVector2D writes a "(x,y)" vector.
func (w *Writer) WriteVector2D(name string, value Vector2D) {
	w.WriteString(name, value.String())
}

// WriteFileName writes a filename reference.
func (w *Writer) WriteFileName(name string, value LocalFileName) {
	w.WriteString(name, value.ToWriteString())
}

// WriteVersion writes a version number.
func (w *Writer) WriteVersion(name string, value version.Version) {
	w.WriteString(name, value.String())
}

// Flush writes any buffered output and returns the first write error.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); w.err == nil && err != nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.writeRaw("\t")
	}
}

func (w *Writer) writeRaw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}
