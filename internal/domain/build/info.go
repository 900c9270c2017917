// Package build describes the running tripbook binary.
package build

import (
	"runtime/debug"
	"strings"
)

const repoURL = "https://github.com/bnema/tripbook"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithModuleInfo fills fields left at their ldflags defaults from the
// module metadata `go install` embeds.
func (i Info) WithModuleInfo() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	return i.merge(bi)
}

func (i Info) merge(bi *debug.BuildInfo) Info {
	if unset(i.Version, "dev") && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	if i.GoVersion == "" {
		i.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if unset(i.Commit, "none") {
				i.Commit = shortCommit(s.Value)
			}
		case "vcs.time":
			if unset(i.BuildDate, "unknown") {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// ClientName identifies this binary to the trip store and the broker,
// e.g. "tripbook/v1.4.0".
func (i Info) ClientName() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	return "tripbook/" + version
}

// RepoURL returns the project page.
func RepoURL() string {
	return repoURL
}

func unset(value, placeholder string) bool {
	return value == "" || value == placeholder
}

func shortCommit(rev string) string {
	rev = strings.TrimSpace(rev)
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
