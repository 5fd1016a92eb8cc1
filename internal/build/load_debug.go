//go:build debug

package build

import "runtime/debug"

func load() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
	version = semver(version) + " (dev)"
}
