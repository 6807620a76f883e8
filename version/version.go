package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time using -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Product is the client name used in the User-Agent.
const Product = "assemblyai-go"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty"`
}

// Get returns the build info, falling back to VCS stamps embedded by the
// Go toolchain when ldflags were not set.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Dirty:     strings.HasSuffix(Version, "-dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.modified":
				if setting.Value == "true" {
					info.Dirty = true
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// IsRelease reports whether the build carries a clean, stamped version.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.Dirty
}

// String renders the info on one line, e.g. "1.2.0 (abc1234, built 2024-01-15T10:30:00Z, go1.26.0)".
func (i Info) String() string {
	parts := make([]string, 0, 3)
	if i.Commit != "" {
		commit := i.Commit
		if i.Dirty {
			commit += "-dirty"
		}
		parts = append(parts, commit)
	}
	if i.BuildTime != "" {
		parts = append(parts, "built "+i.BuildTime)
	}
	parts = append(parts, i.GoVersion)
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(parts, ", "))
}

// UserAgent returns the User-Agent header value for API requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s/%s)", Product, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
