package main

import "runtime/debug"

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

// resolveVersion prefers the ldflags-injected version and falls back to
// module build info so `go install trendfinder/cmd/trendfinder@vX.Y.Z`
// reports a real version.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" {
		return ldflagsVersion
	}
	if info == nil {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "dev"
}

func resolveVersionFromBuild() string {
	info, _ := debug.ReadBuildInfo()
	return resolveVersion(version, info)
}
