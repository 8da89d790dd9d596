package version

import (
	"fmt"
	"runtime"
)

var (
	// Set at build time with -ldflags "-X .../pkg/version.Version=..."
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running jisort binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the first line printed by --version followed by build details.
func (i Info) String() string {
	return fmt.Sprintf("jisort %s\ncommit: %s, built: %s, %s %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
