// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd

import (
	"github.com/coreos/go-systemd/v22/util"
)

// IsRunning returns whether or not systemd is the local init system.
var IsRunning = func() bool {
	return util.IsRunningSystemd()
}
