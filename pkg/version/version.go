// Package version contains build identity for hideezctl.
package version

var (
	// Version is the current version of hideezctl.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// Info returns the build identity as a mapping suitable for rendering.
func Info() map[string]any {
	return map[string]any{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}
}
