package oasblocks

import (
	"fmt"
	"runtime"
)

// Set via ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the short git hash the binary was built from, or "unknown".
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

// UserAgent returns the User-Agent string the documentation server sends
// in its Server header.
func UserAgent() string {
	return fmt.Sprintf("oasblocks/%s", version)
}

// BuildInfo returns every build detail on its own line.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s\n",
		Version(), Commit(), BuildTime(), GoVersion())
}
