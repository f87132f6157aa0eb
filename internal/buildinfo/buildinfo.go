// Package buildinfo holds the build metadata for the lazycd binary.
// The linker injects values into cmd/lazycd/main.go, which forwards
// them here so the UI and --version output can query them.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Set stores the metadata received from linker-injected variables and
// backfills missing pieces from runtime/debug build info.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
	enrich()
}

// Version returns the build version string.
func Version() string { return version }

// String returns the multi-line form used by --version output.
func String() string {
	return fmt.Sprintf("lazycd %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s",
		version, commit, date, builtBy)
}

// enrich fills commit and builtBy from debug.ReadBuildInfo when the
// linker left them at their defaults, so plain `go install` builds
// still report a revision.
func enrich() {
	if commit != "none" && builtBy != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if commit == "none" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
			}
		}
	}
	if builtBy == "unknown" {
		builtBy = info.GoVersion
	}
}
