package commentseed

import (
	"fmt"
	"runtime"
)

// Version is the release this source tree builds by default
const Version = "0.1.0"

// BuildInfo contains build information
var BuildInfo = struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}{
	Version:   Version,
	GoVersion: runtime.Version(),
}

// SetBuildInfo records values stamped in at link time. Empty values leave
// the defaults untouched.
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		BuildInfo.Version = version
	}
	if commit != "" {
		BuildInfo.GitCommit = commit
	}
	if date != "" {
		BuildInfo.BuildDate = date
	}
}

// FullVersionInfo returns detailed version information
func FullVersionInfo() string {
	info := fmt.Sprintf("commentseed %s\n", BuildInfo.Version)
	info += fmt.Sprintf("Go Version: %s\n", BuildInfo.GoVersion)

	if BuildInfo.GitCommit != "" {
		info += fmt.Sprintf("Git Commit: %s\n", BuildInfo.GitCommit)
	}

	if BuildInfo.BuildDate != "" {
		info += fmt.Sprintf("Build Date: %s\n", BuildInfo.BuildDate)
	}

	return info
}
