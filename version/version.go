// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package version holds the version of cvm itself, and parses the
// versions reported by the tunnel daemon and its release tags.
package version

import (
	"regexp"
	"strings"

	"github.com/juju/errors"
	semversion "github.com/juju/version/v2"
)

// The presence and format of this constant is very important.
// The debian/rules build recipe uses this value for the version
// number of the release package.
const version = "0.1.0"

// Current gives the current version of cvm.
var Current = semversion.MustParse(version)

// daemonVersionPattern matches the version in the daemon's --version
// output, e.g. "cloudflared version 2024.6.1 (built 2024-06-12-1234 UTC)".
var daemonVersionPattern = regexp.MustCompile(`\bversion\s+v?(\S+)`)

// ParseDaemonVersion extracts the version number from the output of the
// daemon's --version flag.
func ParseDaemonVersion(output string) (semversion.Number, error) {
	match := daemonVersionPattern.FindStringSubmatch(output)
	if match == nil {
		return semversion.Zero, errors.NotValidf("daemon version output %q", strings.TrimSpace(output))
	}
	num, err := semversion.Parse(match[1])
	if err != nil {
		return semversion.Zero, errors.Annotatef(err, "daemon version %q", match[1])
	}
	return num, nil
}

// ParseTag parses a release tag, with or without a leading "v".
func ParseTag(tag string) (semversion.Number, error) {
	num, err := semversion.Parse(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return semversion.Zero, errors.Annotatef(err, "release tag %q", tag)
	}
	return num, nil
}
