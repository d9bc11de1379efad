// Package clipboard copies generated documents to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// System writes to the OS clipboard.
type System struct {
	unsupported func() bool
	writeAll    func(string) error
}

// NewSystem creates a system clipboard.
func NewSystem() *System {
	return &System{
		unsupported: func() bool { return clipboard.Unsupported },
		writeAll:    clipboard.WriteAll,
	}
}

// WriteAll replaces the clipboard contents with text.
func (s *System) WriteAll(text string) error {
	if s.unsupported() {
		return ErrUnsupported
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
