package version

import "regexp"

// Version is set from main.go at startup via ldflags.
var Version = "dev"

var semverRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// Short returns the bare semver for release builds and "dev" for everything
// else (dirty trees, CI snapshots).
func Short() string {
	m := semverRe.FindStringSubmatch(Version)
	if m == nil {
		return "dev"
	}
	return "v" + m[1]
}
