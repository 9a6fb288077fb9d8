// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/service"
	"github.com/juju/cvm/service/common"
)

const statusCommandDoc = `
Show the load, active and sub states of the daemon's service, as reported
by systemd.

Examples:
    cvm service status
    cvm service status --service cloudflared-tunnel --format yaml
`

// NewStatusCommand returns a command reporting the service status.
func NewStatusCommand() cmd.Command {
	return &statusCommand{controllerCommandBase: newControllerCommandBase()}
}

type statusCommand struct {
	controllerCommandBase

	out cmd.Output
}

// Info implements cmd.Command.Info.
func (c *statusCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    "status",
		Purpose: "Show the service status.",
		Doc:     statusCommandDoc,
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *statusCommand) SetFlags(f *gnuflag.FlagSet) {
	c.controllerCommandBase.SetFlags(f)
	c.out.AddFlags(f, "tabular", cvmcmd.WithFormatters("tabular", formatStatusTabular))
}

// Run implements cmd.Command.Run.
func (c *statusCommand) Run(ctx *cmd.Context) error {
	return c.withController(func(stdCtx context.Context, controller service.Controller, name string) error {
		status, err := controller.GetStatus(stdCtx, name)
		if err != nil {
			return errors.Trace(err)
		}
		return c.out.Write(ctx, status)
	})
}

func formatStatusTabular(writer io.Writer, value interface{}) error {
	status, ok := value.(common.Status)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", status, value)
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("Service", "Load", "Active", "Sub")
	table.AddRow(status.Service, status.LoadState, status.ActiveState, status.SubState)
	fmt.Fprintln(writer, table)
	return nil
}
