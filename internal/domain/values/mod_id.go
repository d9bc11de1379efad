package values

import (
	"fmt"
	"regexp"
	"strings"
)

// Mod ids are lowercase letters and digits only; the game rejects anything else.
var modIDPattern = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// ModID identifies a mod and names its asset domain.
type ModID struct {
	value string
}

// NewModID creates a ModID with validation
func NewModID(id string) (ModID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ModID{}, fmt.Errorf("mod id is required")
	}
	if !modIDPattern.MatchString(id) {
		return ModID{}, fmt.Errorf("invalid mod id '%s': must be lowercase letters and digits, starting with a letter", id)
	}
	return ModID{value: id}, nil
}

// MustNewModID creates a ModID or panics
func MustNewModID(id string) ModID {
	m, err := NewModID(id)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the string representation
func (m ModID) String() string {
	return m.value
}

// IsEmpty returns true if this is the zero value
func (m ModID) IsEmpty() bool {
	return m.value == ""
}
