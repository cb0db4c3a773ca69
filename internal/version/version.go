// Package version holds build identification, injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Info returns a human-readable build description.
func Info() string {
	return fmt.Sprintf("vieramatic %s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
