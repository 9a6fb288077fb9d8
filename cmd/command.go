// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"context"
	"time"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/cvm/config"
)

// CommandBase is embedded by cvm commands. It reads the configuration on
// first use and bounds every remote call with --timeout.
type CommandBase struct {
	cmd.CommandBase

	timeout time.Duration
	config  *config.Config
}

// SetFlags implements cmd.Command.SetFlags.
func (c *CommandBase) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.DurationVar(&c.timeout, "timeout", 0, "Bound on each remote call (default from configuration)")
}

// SetConfig replaces the configuration that would otherwise be read from
// disk.
func (c *CommandBase) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// Config returns the configuration with the command line flags applied.
func (c *CommandBase) Config() (*config.Config, error) {
	if c.config == nil {
		cfg, err := config.Read()
		if err != nil {
			return nil, errors.Trace(err)
		}
		c.config = cfg
	}
	if c.timeout > 0 {
		c.config.Timeout = c.timeout
	}
	return c.config, nil
}

// Timeout returns the bound on each remote call: --timeout if given, else
// the configured timeout. An unreadable configuration falls back to
// config.DefaultTimeout; Config reports that error to callers that need it.
func (c *CommandBase) Timeout() time.Duration {
	if c.timeout > 0 {
		return c.timeout
	}
	cfg, err := c.Config()
	if err != nil || cfg.Timeout <= 0 {
		return config.DefaultTimeout
	}
	return cfg.Timeout
}

// StdContext returns a context bounded by Timeout.
func (c *CommandBase) StdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.Timeout())
}

// ServiceCommandBase is embedded by commands acting on the service.
type ServiceCommandBase struct {
	CommandBase

	service string
}

// SetFlags implements cmd.Command.SetFlags.
func (c *ServiceCommandBase) SetFlags(f *gnuflag.FlagSet) {
	c.CommandBase.SetFlags(f)
	f.StringVar(&c.service, "service", "", "Name of the service (default from configuration)")
}

// ServiceName returns the service named on the command line or in the
// configuration.
func (c *ServiceCommandBase) ServiceName() (string, error) {
	if c.service != "" {
		return c.service, nil
	}
	cfg, err := c.Config()
	if err != nil {
		return "", errors.Trace(err)
	}
	return cfg.Service, nil
}
