// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package service holds the commands that control the tunnel daemon's
// service on the local host.
package service

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/service"
)

const serviceCommandDoc = `
"cvm service" starts, stops and reports on the daemon's systemd service.
With no subcommand it reports the service status.

Starting and stopping needs the privilege to manage system services.
`

// NewSuperCommand returns the "service" super command.
func NewSuperCommand() cmd.Command {
	serviceCmd := cvmcmd.NewSubSuperCommand(cmd.SuperCommandParams{
		Name:    "service",
		Purpose: "Control the daemon service.",
		Doc:     serviceCommandDoc,
	})
	serviceCmd.Register(NewStartCommand())
	serviceCmd.Register(NewStopCommand())
	serviceCmd.Register(NewStatusCommand())
	return serviceCmd
}

// ControllerFactory opens a service controller along with the func that
// releases it.
type ControllerFactory func(ctx context.Context) (service.Controller, func(), error)

// controllerCommandBase is embedded by the commands that talk to the init
// system.
type controllerCommandBase struct {
	cvmcmd.ServiceCommandBase

	newController ControllerFactory
	clock         clock.Clock
}

func newControllerCommandBase() controllerCommandBase {
	return controllerCommandBase{
		newController: service.NewController,
		clock:         clock.WallClock,
	}
}

// withController resolves the configuration and service name, opens a
// controller and calls f with both. The controller is released on return.
func (c *controllerCommandBase) withController(f func(ctx context.Context, controller service.Controller, name string) error) error {
	if _, err := c.Config(); err != nil {
		return errors.Trace(err)
	}
	name, err := c.ServiceName()
	if err != nil {
		return errors.Trace(err)
	}
	ctx, cancel := c.StdContext()
	defer cancel()

	controller, release, err := c.newController(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer release()
	return f(ctx, controller, name)
}
