// Package version holds the application version string.
package version

// Version is the application version, overridable at build time via
// -ldflags "-X trans-gate/internal/version.Version=x.y.z".
var Version = "dev"
