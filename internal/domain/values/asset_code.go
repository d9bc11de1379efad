package values

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultDomain is the domain the game assumes when a code has none.
const DefaultDomain = "game"

// AssetCode is a namespaced asset identifier of the form "domain:path".
// Enforces non-empty, whitespace-free codes with at most one domain separator.
type AssetCode struct {
	value string
}

// NewAssetCode creates an AssetCode with validation
func NewAssetCode(code string) (AssetCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return AssetCode{}, fmt.Errorf("asset code cannot be empty")
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return AssetCode{}, fmt.Errorf("invalid asset code %q: must not contain whitespace", code)
	}
	if strings.Count(code, ":") > 1 {
		return AssetCode{}, fmt.Errorf("invalid asset code %q: more than one domain separator", code)
	}
	if strings.HasPrefix(code, ":") || strings.HasSuffix(code, ":") {
		return AssetCode{}, fmt.Errorf("invalid asset code %q: empty domain or path", code)
	}
	return AssetCode{value: code}, nil
}

// MustNewAssetCode creates an AssetCode or panics (for tests/constants)
func MustNewAssetCode(code string) AssetCode {
	c, err := NewAssetCode(code)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the code exactly as authored.
func (c AssetCode) String() string {
	return c.value
}

// Qualified returns the code with its domain spelled out, so "stick" becomes
// "game:stick".
func (c AssetCode) Qualified() string {
	if c.value == "" || strings.IndexByte(c.value, ':') >= 0 {
		return c.value
	}
	return DefaultDomain + ":" + c.value
}

// Domain returns the part before the separator, or DefaultDomain.
func (c AssetCode) Domain() string {
	if i := strings.IndexByte(c.value, ':'); i >= 0 {
		return c.value[:i]
	}
	return DefaultDomain
}

// Path returns the part after the separator.
func (c AssetCode) Path() string {
	if i := strings.IndexByte(c.value, ':'); i >= 0 {
		return c.value[i+1:]
	}
	return c.value
}

// ShortName is the last path segment as shown on a grid cell ("game:ingot-copper" -> "ingot-copper").
func (c AssetCode) ShortName() string {
	return c.Path()
}

// IsEmpty returns true if this is the zero value
func (c AssetCode) IsEmpty() bool {
	return c.value == ""
}

// Equals checks if two codes are identical
func (c AssetCode) Equals(other AssetCode) bool {
	return c.value == other.value
}
