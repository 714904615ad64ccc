// Package version reports the version of this application, which
// appears in the -version output and the window title.
package version

import (
	"fmt"
	"runtime/debug"
)

// unreleased is our version when nothing better is known.
const unreleased = "unreleased"

var (
	// version may be set at build-time, via
	//
	//   -ldflags "-X github.com/skx/makovm/version.version=v1.2.3"
	version = unreleased
)

// GetVersionString returns our version number as a string.
//
// Without a version set at build-time we use the module version
// recorded by "go install", if there is one.
func GetVersionString() string {
	if version != unreleased {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return unreleased
}

// GetVersionBanner returns a banner which is suitable for printing, to show our name,
// version, and homepage link.
func GetVersionBanner() string {
	return fmt.Sprintf("makovm %s\n%s\n", GetVersionString(), "https://github.com/skx/makovm/")
}
