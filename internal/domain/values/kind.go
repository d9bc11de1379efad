package values

import (
	"fmt"
	"strings"
)

// ItemKind distinguishes the two asset families a stack can refer to.
type ItemKind string

const (
	// KindItem is the default kind and is omitted from generated documents.
	KindItem ItemKind = "item"
	// KindBlock refers to a block type.
	KindBlock ItemKind = "block"
)

// NewItemKind parses a kind name. An empty name yields KindItem.
func NewItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "item":
		return KindItem, nil
	case "block":
		return KindBlock, nil
	default:
		return "", fmt.Errorf("invalid kind: %q (valid: item, block)", s)
	}
}

// String returns the string representation
func (k ItemKind) String() string {
	return string(k)
}

// IsDefault reports whether the kind can be left out of a document.
func (k ItemKind) IsDefault() bool {
	return k == KindItem || k == ""
}

// Validate returns an error if the kind value is invalid
func (k ItemKind) Validate() error {
	switch k {
	case KindItem, KindBlock:
		return nil
	default:
		return fmt.Errorf("invalid kind: %q", string(k))
	}
}
