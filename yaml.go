package traitconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	if items == nil {
		items = []T{}
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

func readYAML(r io.Reader) ([]Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Format: YAML, Err: err}
	}
	if err := checkUTF8(YAML, data); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw []rawMetadata
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty input: %w", io.ErrUnexpectedEOF)
		}
		return nil, &DecodeError{Format: YAML, Err: err}
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, &DecodeError{Format: YAML, Line: extra.Line, Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Format: YAML, Err: errNullDocument}
	}
	return fromRaw(YAML, raw)
}
