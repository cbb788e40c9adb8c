package traitconv

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Causes reported inside a [DecodeError].
var (
	ErrMissingField   = errors.New("missing field")
	ErrTrailingData   = errors.New("trailing data after document")
	ErrDuplicateField = errors.New("duplicate field")
	ErrInvalidUTF8    = errors.New("invalid UTF-8")
	errNotAnObject    = errors.New("expected an object")
)

// DecodeError reports malformed input together with the best location the
// decoder could determine. Zero location fields are unknown.
//
// A DecodeError matches [ErrInputDecode] and its cause under [errors.Is] and
// [errors.As].
type DecodeError struct {
	Format Format
	Record int   // 1-based record index
	Line   int   // 1-based input line
	Column int   // 1-based column
	Offset int64 // byte offset into the input
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInputDecode.Error())
	if e.Format != "" {
		fmt.Fprintf(&b, " (%s)", e.Format)
	}
	var loc []string
	if e.Record > 0 {
		loc = append(loc, fmt.Sprintf("record %d", e.Record))
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprintf("line %d", e.Line))
	}
	if e.Column > 0 {
		loc = append(loc, fmt.Sprintf("column %d", e.Column))
	}
	if e.Offset > 0 {
		loc = append(loc, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Field != "" {
		loc = append(loc, fmt.Sprintf("field %q", e.Field))
	}
	if len(loc) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(loc, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInputDecode}
	}
	return []error{ErrInputDecode, e.Err}
}

// checkUTF8 locates the first byte of data that does not start a valid UTF-8
// sequence.
func checkUTF8(f Format, data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	off := 0
	for off < len(data) {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		off += size
	}
	head := data[:off]
	return &DecodeError{
		Format: f,
		Line:   1 + bytes.Count(head, []byte("\n")),
		Column: off - bytes.LastIndexByte(head, '\n'),
		Offset: int64(off),
		Err:    ErrInvalidUTF8,
	}
}

// fieldError carries the dotted path of the field a nested decode failed on.
type fieldError struct {
	path string
	err  error
}

func (e *fieldError) Error() string { return e.path + ": " + e.err.Error() }

func (e *fieldError) Unwrap() error { return e.err }

func withField(key string, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return &fieldError{path: key + "." + fe.path, err: fe.err}
	}
	return &fieldError{path: key, err: err}
}
