// Package main is the entry point for the tripbook CLI.
package main

import (
	"runtime"

	"github.com/bnema/tripbook/internal/cli/cmd"
	"github.com/bnema/tripbook/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}.WithModuleInfo())
	cmd.Execute()
}
