package values

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// AnyVersion is accepted as a dependency version and matches every release.
const AnyVersion = "*"

// ValidateModVersion checks that a modinfo version is semver ("1.0.0", "1.2.0-rc.1").
func ValidateModVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("version is required")
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid version '%s': %w", v, err)
	}
	return nil
}

// ValidateDependencyVersion accepts "*", an empty string (any) or a semver version.
func ValidateDependencyVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || v == AnyVersion {
		return nil
	}
	if _, err := semver.NewVersion(v); err != nil {
		return fmt.Errorf("invalid dependency version '%s': %w", v, err)
	}
	return nil
}
