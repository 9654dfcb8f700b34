package build_info

import "fmt"

const (
	DefaultDevVersion = "0.0.0-localdev"
)

// Build information variables - set via ldflags during build
var (
	Version = DefaultDevVersion
	Commit  = "unknown"
	Date    = "unknown"
)

// IsDev reports whether the binary was built without release ldflags.
func IsDev() bool {
	return Version == "" || Version == DefaultDevVersion || Version == "dev"
}

// String renders the build information on one line, as stamped into
// synthesis manifests.
func String() string {
	return fmt.Sprintf("cfnkit %s (commit=%s, date=%s)", Version, Commit, Date)
}
