package transcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Encode converts a value to indented JSON text.
func Encode(v any) (string, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write writes a value as indented JSON to w.
// The output ends with a newline, matching json.Encoder behavior.
func Write(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Decode parses JSON text into a value of type T.
func Decode[T any](text string) (T, error) {
	return Read[T](bytes.NewReader([]byte(text)))
}

// Read decodes a single JSON value of type T from r.
func Read[T any](r io.Reader) (T, error) {
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}
