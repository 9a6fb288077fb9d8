// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/cvm/service/systemd"
)

type patcher interface {
	PatchValue(interface{}, interface{})
}

func PatchGOOS(patcher patcher, os string) {
	patcher.PatchValue(&runtimeOS, os)
}

func PatchIsRunningSystemd(patcher patcher, running bool) {
	patcher.PatchValue(&isRunningSystemd, func() bool { return running })
}

func PatchConnect(patcher patcher, connect func(context.Context) (systemd.Session, error)) {
	patcher.PatchValue(&connectSystemd, connect)
}
