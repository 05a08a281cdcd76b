package schemaview

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden with -ldflags "-X github.com/erraggy/schemaview.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version, or "dev" for builds from source.
func Version() string {
	return version
}

// Commit returns the short git hash of the build, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent identifies schemaview in HTTP requests for remote documents.
func UserAgent() string {
	return "schemaview/" + version
}

// BuildInfo returns the build metadata printed by "schemaview version".
func BuildInfo() string {
	return fmt.Sprintf("schemaview %s\ncommit: %s\nbuilt: %s\ngo: %s\n",
		Version(), Commit(), BuildTime(), GoVersion())
}
