package output

import (
	"bytes"
	"encoding/json"
)

// JSONEncoder writes documents the way the game's own assets are laid out:
// two-space indentation, no HTML escaping, trailing newline.
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSON encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Encode renders doc as indented JSON.
func (e *JSONEncoder) Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
