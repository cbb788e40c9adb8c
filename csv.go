package traitconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// writeCSV writes the header of T, when T implements [Headed], followed by
// one row per item. The header is written even when items is empty.
func writeCSV[T any](w io.Writer, items []T) error {
	var zero T
	probe := any(zero)
	if probe == nil {
		if len(items) == 0 {
			return nil
		}
		probe = any(items[0])
	}
	if _, ok := probe.(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, CSV, probe)
	}
	cw := csv.NewWriter(w)
	if h, ok := probe.(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := cw.Write(any(item).(Rower).Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// columnIndex holds, for each entry of columns, its position in the input
// header.
type columnIndex []int

// newColumnIndex resolves every required column against header. When a name
// repeats, the first occurrence wins. Unknown columns are ignored.
func newColumnIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}
	idx := make(columnIndex, len(columns))
	for i, name := range columns {
		p, ok := pos[name]
		if !ok {
			return nil, &DecodeError{Format: CSV, Line: 1, Field: name, Err: ErrMissingField}
		}
		idx[i] = p
	}
	return idx, nil
}

// collectible builds the n-th data record. cr must still be positioned on it.
func (idx columnIndex) collectible(cr *csv.Reader, rec []string, n int) (Collectible, error) {
	const editionCol = 2
	edition, err := strconv.ParseUint(rec[idx[editionCol]], 10, 32)
	if err != nil {
		line, col := cr.FieldPos(idx[editionCol])
		return Collectible{}, &DecodeError{
			Format: CSV,
			Record: n,
			Line:   line,
			Column: col,
			Field:  ColumnEdition,
			Err:    err,
		}
	}
	c := Collectible{
		Name:        rec[idx[0]],
		Description: rec[idx[1]],
		Edition:     uint32(edition),
	}
	for i, p := range c.slots() {
		*p = rec[idx[3+i]]
	}
	return c, nil
}
