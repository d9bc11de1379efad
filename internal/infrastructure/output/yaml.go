package output

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

// YAMLEncoder renders documents as YAML.
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAML encoder.
func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

// Encode renders doc as YAML.
func (e *YAMLEncoder) Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf, yaml.Indent(2))

	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
