// FILE: src/internal/version/version.go
package version

import "fmt"

// Populated at compile time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the full version line used by --version output
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// Short returns just the version tag, used in the User-Agent header
func Short() string {
	return Version
}
