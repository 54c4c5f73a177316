package version

import "fmt"

// Semantic version of the manifest system.
const Version = "1.1.0"

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the full version string.
func String() string {
	return fmt.Sprintf("v%s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

// Short returns just the semantic version.
func Short() string {
	return "v" + Version
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
