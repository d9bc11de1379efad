package values

import (
	"fmt"
	"strings"
)

// ModSide declares where a mod has to be installed.
type ModSide string

const (
	SideUniversal ModSide = "Universal"
	SideClient    ModSide = "Client"
	SideServer    ModSide = "Server"
)

// NewModSide parses a side case-insensitively. Empty means Universal.
func NewModSide(s string) (ModSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "universal":
		return SideUniversal, nil
	case "client":
		return SideClient, nil
	case "server":
		return SideServer, nil
	default:
		return "", fmt.Errorf("invalid mod side: %q (valid: Universal, Client, Server)", s)
	}
}

func (s ModSide) String() string { return string(s) }

// ModType is the modinfo "type" field.
type ModType string

const (
	ModTypeCode    ModType = "code"
	ModTypeContent ModType = "content"
	ModTypeDLC     ModType = "dlc"
)

// NewModType parses a mod type. Empty means code.
func NewModType(s string) (ModType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "code":
		return ModTypeCode, nil
	case "content":
		return ModTypeContent, nil
	case "dlc":
		return ModTypeDLC, nil
	default:
		return "", fmt.Errorf("invalid mod type: %q (valid: code, content, dlc)", s)
	}
}

func (t ModType) String() string { return string(t) }
