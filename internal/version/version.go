package version

import "fmt"

// Build-time variables. Override via -ldflags.
var (
	Version = "0.1.0"
	Commit  = ""
)

// Info describes build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

// Get returns the build info.
func Get() Info {
	return Info{Version: Version, Commit: Commit}
}

// String renders "version (commit)" for log lines.
func (i Info) String() string {
	if i.Commit == "" {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
