// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"runtime"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/cvm/service/common"
	"github.com/juju/cvm/service/systemd"
)

var logger = loggo.GetLogger("cvm.service")

// ErrNotSupported is returned on hosts whose init system cannot be driven.
const ErrNotSupported = errors.ConstError("service management not supported on this platform")

// Controller starts, stops and inspects a service on the local host.
type Controller interface {
	Start(ctx context.Context, name string) (systemd.Ack, error)
	Stop(ctx context.Context, name string) (systemd.Ack, error)
	GetStatus(ctx context.Context, name string) (common.Status, error)
}

// These exist to allow patching during tests.
var (
	runtimeOS        = runtime.GOOS
	isRunningSystemd = systemd.IsRunning
	connectSystemd   = systemd.Connect
)

// NewController discovers the local init system and returns a Controller
// for it, along with a func that releases the underlying session. The
// release func must be called once the Controller is no longer needed.
func NewController(ctx context.Context) (Controller, func(), error) {
	if runtimeOS != "linux" {
		return nil, nil, errors.Annotatef(ErrNotSupported, "%s", runtimeOS)
	}
	if !isRunningSystemd() {
		logger.Debugf("systemd is not the init system of this host")
		return nil, nil, common.NewConnectionError(errors.NotFoundf("systemd (based on local host)"))
	}

	session, err := connectSystemd(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	logger.Debugf("discovered init system %q from local host", "systemd")
	return systemd.NewController(session), session.Close, nil
}
