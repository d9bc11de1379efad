// Package version provides build version information for modmaker.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"
	// Commit is the git commit hash (set by build flags)
	Commit = "unknown"
	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// Info contains version and build information
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the version alone.
func (i Info) String() string {
	return i.Version
}

// IsRelease reports whether the binary was built from a tagged release
// rather than a development checkout.
func (i Info) IsRelease() bool {
	v, err := semver.NewVersion(i.Version)
	return err == nil && v.Prerelease() == ""
}

// Full returns a detailed version string with all build information
func (i Info) Full() string {
	return fmt.Sprintf("modmaker %s (commit %s, built %s, %s %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
