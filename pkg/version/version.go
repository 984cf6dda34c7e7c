// Package version provides the application version.
package version

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X tableflip.dev/tidy/pkg/version.Version=1.2.3" ./cmd/tidy
var Version = "0.1.0"

// Commit and Date are set at build time alongside Version.
var (
	Commit = "none"
	Date   = "unknown"
)
