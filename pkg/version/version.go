// Package version exposes the coinview build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/coinview/lazylist/pkg/version.version=...".
//
//nolint:gochecknoglobals // Build-time injection target
var version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
