// Package version reports build metadata for the running binary
package version

import (
	"runtime/debug"
	"sync"
)

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Set via -ldflags "-X 'profanity/internal/core/version.version=v0.1.0'
// -X 'profanity/internal/core/version.commit=abcd' -X 'profanity/internal/core/version.date=2026-10-19'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the API reports
const Service = "profanity-api"

var (
	once  sync.Once
	built BuildInfo
)

// Info returns the build information. Commit and date fall back to the vcs
// stamp the go tool embeds when ldflags did not set them
func Info() BuildInfo {
	once.Do(func() {
		built = resolve(Service, version, commit, date, debug.ReadBuildInfo)
	})
	return built
}

func resolve(service, ver, rev, at string, read func() (*debug.BuildInfo, bool)) BuildInfo {
	out := BuildInfo{Service: service, Version: ver, Commit: rev, Date: at}
	bi, ok := read()
	if !ok || bi == nil {
		return out
	}
	out.GoVersion = bi.GoVersion
	if out.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		out.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if out.Commit == "none" {
				out.Commit = s.Value
			}
		case "vcs.time":
			if out.Date == "unknown" {
				out.Date = s.Value
			}
		}
	}
	return out
}
