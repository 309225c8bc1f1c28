// Package version holds build metadata stamped in by `mage build`.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns "svgstats <version> (<commit>, <date>)".
func String() string {
	return fmt.Sprintf("svgstats %s (%s, %s)", Version, CommitHash, BuildDate)
}
