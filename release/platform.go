// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package release

import (
	"runtime"
)

// archiveExtensions holds the extension of the standalone asset published
// for operating systems that do not ship a bare binary.
var archiveExtensions = map[string]string{
	"darwin":  ".tgz",
	"windows": ".exe",
}

// PlatformSuffix returns the asset name suffix for the given Go operating
// system and architecture, e.g. "linux-amd64", "darwin-arm64.tgz" or
// "windows-amd64.exe".
func PlatformSuffix(goos, goarch string) string {
	return goos + "-" + goarch + archiveExtensions[goos]
}

// HostPlatform returns the asset name suffix for the running host.
func HostPlatform() string {
	return PlatformSuffix(runtime.GOOS, runtime.GOARCH)
}
