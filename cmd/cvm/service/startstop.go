// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"time"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/juju/retry"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/service"
	"github.com/juju/cvm/service/common"
	"github.com/juju/cvm/service/systemd"
)

var logger = loggo.GetLogger("cvm.cmd.service")

// pollDelay is the interval between status reads while waiting.
const pollDelay = 500 * time.Millisecond

// errNotSettled is returned by a status poll that has not yet seen the
// target state.
const errNotSettled = errors.ConstError("service has not settled")

const startCommandDoc = `
Ask systemd to start the daemon's service. The command returns once
systemd has queued the job; with --wait it returns once the service is
active, or fails if the service fails or the timeout elapses.

A queued stop job for the service is replaced by the start.

Examples:
    sudo cvm service start
    sudo cvm service start --wait --timeout 1m
`

const stopCommandDoc = `
Ask systemd to stop the daemon's service. The command returns once
systemd has queued the job; with --wait it returns once the service is
inactive or failed, or fails if the timeout elapses.

A queued start job for the service is replaced by the stop.

Examples:
    sudo cvm service stop
`

// NewStartCommand returns a command starting the service.
func NewStartCommand() cmd.Command {
	return &jobCommand{
		controllerCommandBase: newControllerCommandBase(),
		op:                    startOp,
	}
}

// NewStopCommand returns a command stopping the service.
func NewStopCommand() cmd.Command {
	return &jobCommand{
		controllerCommandBase: newControllerCommandBase(),
		op:                    stopOp,
	}
}

type jobOp struct {
	name    string
	purpose string
	doc     string
	target  string
	submit  func(service.Controller, context.Context, string) (systemd.Ack, error)
}

var (
	startOp = jobOp{
		name:    "start",
		purpose: "Start the service.",
		doc:     startCommandDoc,
		target:  common.ActiveStateActive,
		submit:  service.Controller.Start,
	}
	stopOp = jobOp{
		name:    "stop",
		purpose: "Stop the service.",
		doc:     stopCommandDoc,
		target:  common.ActiveStateInactive,
		submit:  service.Controller.Stop,
	}
)

type jobCommand struct {
	controllerCommandBase

	op   jobOp
	wait bool
}

// Info implements cmd.Command.Info.
func (c *jobCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    c.op.name,
		Purpose: c.op.purpose,
		Doc:     c.op.doc,
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *jobCommand) SetFlags(f *gnuflag.FlagSet) {
	c.controllerCommandBase.SetFlags(f)
	f.BoolVar(&c.wait, "wait", false, "Wait for the service to reach the requested state")
}

// Run implements cmd.Command.Run.
func (c *jobCommand) Run(ctx *cmd.Context) error {
	return c.withController(func(stdCtx context.Context, controller service.Controller, name string) error {
		ack, err := c.op.submit(controller, stdCtx, name)
		if err != nil {
			return errors.Trace(err)
		}
		ctx.Infof("%s job %d queued for %s", c.op.name, ack.JobID, ack.Unit)
		if !c.wait {
			return nil
		}

		status, err := c.waitFor(controller, name)
		if err != nil {
			return errors.Trace(err)
		}
		ctx.Infof("%s is %s (%s)", ack.Unit, status.ActiveState, status.SubState)
		return nil
	})
}

// waitFor polls the service status until it reaches the target active
// state. Each read gets its own deadline; the whole wait is bounded by
// the command timeout.
func (c *jobCommand) waitFor(controller service.Controller, name string) (common.Status, error) {
	var status common.Status
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			ctx, cancel := c.StdContext()
			defer cancel()

			var err error
			status, err = controller.GetStatus(ctx, name)
			if err != nil {
				return errors.Trace(err)
			}
			switch status.ActiveState {
			case c.op.target:
				return nil
			case common.ActiveStateFailed:
				if c.op.target == common.ActiveStateActive {
					return errors.Errorf("service %q failed to start (%s)", name, status.SubState)
				}
				// A unit killed on stop ends up failed.
				return nil
			}
			return errNotSettled
		},
		IsFatalError: func(err error) bool {
			return !errors.Is(err, errNotSettled)
		},
		NotifyFunc: func(err error, attempt int) {
			logger.Debugf("attempt %d: %s is %s (%s)", attempt, name, status.ActiveState, status.SubState)
		},
		Attempts:    -1,
		Delay:       pollDelay,
		MaxDuration: c.Timeout(),
		Clock:       c.clock,
	})
	if retry.IsDurationExceeded(err) {
		return common.Status{}, errors.Errorf("timed out waiting for %q to become %s, last seen %s", name, c.op.target, status.ActiveState)
	}
	if err != nil {
		return common.Status{}, errors.Trace(err)
	}
	return status, nil
}
