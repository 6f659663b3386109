package version

import (
	"fmt"
	"runtime"
)

// Build metadata, injected through -ldflags by the release pipeline.
var (
	// Version is the semantic version tag; "dev" for local builds.
	Version = "dev"

	// Commit is the git hash the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"

	// BuiltBy names the build entry point (goreleaser, make, ...).
	BuiltBy = "unknown"
)

// Info renders the multi-line report shown by `csim version`.
func Info() string {
	return fmt.Sprintf(
		"csim %s\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s",
		Version,
		Commit,
		Date,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// Short returns the bare version string.
func Short() string {
	return Version
}
