// Package version carries the build identity of the endorse binary.
package version

import "runtime/debug"

const unknown = "unknown"

// Build identity, overridden at link time with
// -ldflags "-X github.com/Sumatoshi-tech/endorse/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills the identity from the module build info when ldflags
// did not set it, e.g. for go install builds.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	applyBuildInfo(info)
}

func applyBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == unknown {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == unknown {
				Date = setting.Value
			}
		}
	}
}

// String formats the identity for the version command.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
