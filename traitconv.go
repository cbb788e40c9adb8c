package traitconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInputDecode       = errors.New("input decode error")
	ErrOutputEncode      = errors.New("output encode error")
	ErrConfig            = errors.New("config error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format names a wire representation.
type Format string

const (
	JSON Format = "JSON"
	CSV  Format = "CSV"
	YAML Format = "YAML"
)

var formats = []Format{JSON, CSV, YAML}

// Shape identifies which record type a format carries.
type Shape int

const (
	ShapeMetadata Shape = iota
	ShapeCollectible
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// Shape reports the record type carried by f. Unknown formats report
// ShapeMetadata.
func (f Format) Shape() Shape {
	if f == CSV {
		return ShapeCollectible
	}
	return ShapeMetadata
}

// Counterpart returns the default output format for input format f.
func (f Format) Counterpart() Format {
	if f.Shape() == ShapeCollectible {
		return JSON
	}
	return CSV
}

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. Matching is exact and case-sensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ParseInput maps a command-line input selector to a format. Only the exact
// token "CSV" selects CSV; every other value selects JSON.
func ParseInput(s string) Format {
	if f, err := ParseFormat(s); err == nil && f == CSV {
		return CSV
	}
	return JSON
}

// Rower provides row data. Required for CSV.
type Rower interface {
	Row() []string
}

// Headed provides column headers for CSV.
// Without it, CSV has no header row.
type Headed interface {
	Header() []string
}

// Write encodes items in format f and writes them to w. JSON and YAML accept
// any value; CSV requires T to implement [Rower].
func Write[T any](w io.Writer, f Format, items ...T) error {
	var err error
	switch f {
	case JSON:
		err = writeJSON(w, items)
	case YAML:
		err = writeYAML(w, items)
	case CSV:
		err = writeCSV(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil && !errors.Is(err, ErrMissingInterface) {
		return fmt.Errorf("%w: %w", ErrOutputEncode, err)
	}
	return err
}

// Marshal encodes items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
