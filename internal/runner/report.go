package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeJSON renders v as two-space indented JSON with a trailing newline.
// Non-ASCII text and HTML characters are written as is.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// WriteJSONFile writes v to path as indented JSON.
func WriteJSONFile(path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
