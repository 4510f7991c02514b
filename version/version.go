// Package version reports the version of the beeptrack binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version can be set at build time using something like:
// go build -ldflags "-X github.com/beeptrack/beeptrack/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees, or empty if the build info does not have it.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

// String is the one line version banner printed by the -v flag.
func String(program string) string {
	v := VersionOrHash
	if v == "" {
		v = "devel"
	}
	return fmt.Sprintf("%s %s (%s)", program, v, runtime.Version())
}
