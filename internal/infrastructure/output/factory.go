// Package output renders generated documents for files, the terminal and the clipboard.
package output

import (
	"fmt"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
)

// Format names accepted by Create.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Options tune the encoders.
type Options struct {
	// Color enables ANSI colors in table output.
	Color bool
}

// EncoderFactory creates document encoders by format name.
type EncoderFactory struct{}

// NewEncoderFactory creates a new encoder factory.
func NewEncoderFactory() *EncoderFactory {
	return &EncoderFactory{}
}

// Create returns an encoder for the given format name.
func (f *EncoderFactory) Create(format string, options Options) (ports.DocumentEncoder, error) {
	switch format {
	case FormatJSON, "":
		return NewJSONEncoder(), nil
	case FormatYAML:
		return NewYAMLEncoder(), nil
	case FormatTable:
		return NewTableEncoder(options.Color), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *EncoderFactory) SupportedFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatTable}
}
