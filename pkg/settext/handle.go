package settext

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mseforge/settext/pkg/version"
)

// Time layouts accepted for date/time values. The writer emits the
// first; the date-only form appears in older files.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// HandleString stores the raw value into dst. Never fails.
func (r *Reader) HandleString(dst *string) {
	if v, ok := r.getValue(); ok {
		*dst = v
	}
}

// HandleInt decodes an integer. On a malformed value a warning is
// recorded and dst is left unchanged.
func (r *Reader) HandleInt(dst *int) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.Warning(fmt.Sprintf("Expected integer instead of '%s'", v))
		return
	}
	*dst = n
}

// HandleUint decodes a non-negative integer. Malformed values record a
// warning and leave dst unchanged; negative values record a warning and
// are coerced via absolute value.
func (r *Reader) HandleUint(dst *uint) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.Warning(fmt.Sprintf("Expected non-negative integer instead of '%s'", v))
		return
	}
	if n < 0 {
		r.Warning(fmt.Sprintf("Expected non-negative integer instead of %d", n))
		n = -n
	}
	*dst = uint(n)
}

// HandleFloat decodes a floating point number. On a malformed value a
// warning is recorded and dst is left unchanged.
func (r *Reader) HandleFloat(dst *float64) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.Warning(fmt.Sprintf("Expected floating point number instead of '%s'", v))
		return
	}
	*dst = f
}

// parseBool decodes the literal boolean set. Case sensitive.
func parseBool(v string) (value, ok bool) {
	switch v {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}

// HandleBool decodes a boolean from the literal set "true"/"1"/"yes"
// and "false"/"0"/"no". On no match a warning is recorded and dst is
// left unchanged.
func (r *Reader) HandleBool(dst *bool) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	b, matched := parseBool(v)
	if !matched {
		r.Warning(fmt.Sprintf("Expected boolean ('true' or 'false') instead of '%s'", v))
		return
	}
	*dst = b
}

// HandleTriBool decodes a tri-state boolean using the boolean literal
// set. On no match a warning is recorded and dst is left unchanged.
func (r *Reader) HandleTriBool(dst *TriBool) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	b, matched := parseBool(v)
	if !matched {
		r.Warning(fmt.Sprintf("Expected boolean ('true' or 'false') instead of '%s'", v))
		return
	}
	*dst = TriBoolOf(b)
}

// HandleTime decodes a date/time value. The entire value must be
// consumed by the parse; a malformed date has no safe default and is a
// hard parse error.
func (r *Reader) HandleTime(dst *time.Time) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*dst = t
			return
		}
	}
	r.fail(&ParseError{Line: r.prevLineNumber, Msg: "Expected a date and time"})
}

// HandleVector2D decodes a "(x,y)" vector. A malformed vector has no
// safe default and is a hard parse error.
func (r *Reader) HandleVector2D(dst *Vector2D) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	var vec Vector2D
	n, err := fmt.Sscanf(v, "(%g,%g)", &vec.X, &vec.Y)
	if err != nil || n != 2 {
		r.fail(&ParseError{Line: r.prevLineNumber, Msg: "Expected (x,y)"})
		return
	}
	*dst = vec
}

// HandleFileName decodes a filename reference.
func (r *Reader) HandleFileName(dst *LocalFileName) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	*dst = FileNameFromReadString(v)
}

// HandleVersion decodes a version number. On a malformed value a
// warning is recorded and dst is left unchanged.
func (r *Reader) HandleVersion(dst *version.Version) {
	v, ok := r.getValue()
	if !ok {
		return
	}
	ver, err := version.Parse(v)
	if err != nil {
		r.Warning(fmt.Sprintf("Expected version number instead of '%s'", v))
		return
	}
	*dst = ver
}

// HandleIgnore skips the named block if the file was written before the
// given version. Used to drop keys that old application versions wrote
// but that no longer mean anything.
func (r *Reader) HandleIgnore(before version.Version, name string) {
	if r.fileAppVersion.Less(before) {
		if r.EnterBlock(name) {
			r.ExitBlock()
		}
	}
}
