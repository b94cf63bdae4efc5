// Package version reports build metadata stamped with -ldflags
package version

import "runtime"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set with -ldflags "-X 'qualifiers/internal/core/version.version=v1.2.0'
// -X 'qualifiers/internal/core/version.commit=abcd' -X 'qualifiers/internal/core/version.date=2026-03-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build info for service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// Commit is the stamped commit, "none" for local builds
func Commit() string { return commit }
