// Package buildinfo exposes metadata embedded into the binary at build time.
package buildinfo

import "runtime/debug"

// Set with -ldflags "-X weather-facade/pkg/buildinfo.version=... -X weather-facade/pkg/buildinfo.revision=...".
var (
	version   string
	revision  string
	buildTime string
)

// Unknown is reported for metadata that is neither configured nor embedded.
const Unknown = "unknown"

type Info struct {
	Version  string
	Revision string
	Time     string
}

// Read returns what the linker and the Go toolchain recorded about this binary.
// Fields that were not recorded are left empty.
func Read() Info {
	info := Info{
		Version:  version,
		Revision: revision,
		Time:     buildTime,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Revision == "" {
				info.Revision = s.Value
			}
		case "vcs.time":
			if info.Time == "" {
				info.Time = s.Value
			}
		}
	}

	return info
}

// FirstNonEmpty returns the first non-empty value, or Unknown.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return Unknown
}
