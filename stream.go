package traitconv

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

const byteOrderMark = "\ufeff"

// Collectibles returns an iterator over the data records of a CSV document
// whose first row is a header. Columns are matched by header name, so their
// order in the input is free and a leading byte order mark is skipped. Fields
// must be valid UTF-8. Iteration stops after the first error, which is
// yielded with a zero Collectible. An empty document yields nothing.
func Collectibles(r io.Reader) iter.Seq2[Collectible, error] {
	return func(yield func(Collectible, error) bool) {
		cr := csv.NewReader(r)
		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(Collectible{}, &DecodeError{Format: CSV, Err: err})
			return
		}
		if err := checkFields(cr, nil, header, 0); err != nil {
			yield(Collectible{}, err)
			return
		}
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
		cr.FieldsPerRecord = len(header)
		idx, err := newColumnIndex(header)
		if err != nil {
			yield(Collectible{}, err)
			return
		}
		for n := 1; ; n++ {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Collectible{}, &DecodeError{Format: CSV, Record: n, Err: err})
				return
			}
			if err := checkFields(cr, header, rec, n); err != nil {
				yield(Collectible{}, err)
				return
			}
			c, err := idx.collectible(cr, rec, n)
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// checkFields rejects the n-th record when a field is not valid UTF-8.
// encoding/csv passes such bytes through unchanged. header names the fields
// when known.
func checkFields(cr *csv.Reader, header, rec []string, n int) error {
	for i, field := range rec {
		if utf8.ValidString(field) {
			continue
		}
		line, col := cr.FieldPos(i)
		de := &DecodeError{Format: CSV, Record: n, Line: line, Column: col, Err: ErrInvalidUTF8}
		if i < len(header) {
			de.Field = header[i]
		}
		return de
	}
	return nil
}

// collect drains seq into a slice, stopping at the first error.
func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := []T{}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
