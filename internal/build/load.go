//go:build !debug

package build

import "runtime/debug"

func load() {
	if version != "" {
		version = semver(version)
	}
	if pkg != "" && version != "" && buildTime != "" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}
