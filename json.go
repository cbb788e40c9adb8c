package traitconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNullDocument = errors.New("expected a sequence of records, got null")

func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if items == nil {
		items = []T{}
	}
	return enc.Encode(items)
}

// readJSON decodes the whole document. encoding/json substitutes U+FFFD for
// invalid UTF-8, so the bytes are checked before decoding.
func readJSON(r io.Reader) ([]Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Format: JSON, Err: err}
	}
	if err := checkUTF8(JSON, data); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, jsonDecodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, &DecodeError{Format: JSON, Offset: dec.InputOffset(), Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Format: JSON, Err: errNullDocument}
	}
	out := make([]Metadata, len(raw))
	for i, msg := range raw {
		var rm rawMetadata
		if err := json.Unmarshal(msg, &rm); err != nil {
			de := &DecodeError{Format: JSON, Record: i + 1, Err: err}
			var fe *fieldError
			if errors.As(err, &fe) {
				de.Field, de.Err = fe.path, fe.err
			}
			return nil, de
		}
		m, err := rm.record(JSON, i+1)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

func jsonDecodeError(err error) error {
	de := &DecodeError{Format: JSON, Err: err}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		de.Err = fmt.Errorf("empty input: %w", io.ErrUnexpectedEOF)
	case errors.As(err, &syntaxErr):
		de.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		de.Offset = typeErr.Offset
		de.Field = typeErr.Field
	}
	return de
}

// decodeObject decodes one JSON object into fields, keyed by exact name.
// Unknown keys are skipped. A known key given twice is an error. null leaves
// every field untouched.
func decodeObject(data []byte, fields map[string]any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w, got %v", errNotAnObject, tok)
	}
	seen := make(map[string]bool, len(fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		target, known := fields[key]
		if !known {
			continue
		}
		if seen[key] {
			return withField(key, ErrDuplicateField)
		}
		seen[key] = true
		if err := json.Unmarshal(value, target); err != nil {
			return withField(key, err)
		}
	}
	_, err = dec.Token()
	return err
}
