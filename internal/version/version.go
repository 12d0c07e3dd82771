// Package version exposes build-time version information.
package version

// Version is set at build time via -ldflags "-X .../internal/version.Version=...".
var Version = "dev"
