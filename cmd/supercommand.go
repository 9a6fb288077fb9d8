// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/juju/cmd/v3"
	"github.com/juju/loggo"

	"github.com/juju/cvm/osenv"
	"github.com/juju/cvm/version"
)

var logger = loggo.GetLogger("cvm.cmd")

// NewSuperCommand is like cmd.NewSuperCommand but
// it adds cvm-specific functionality:
// - The default logging configuration is taken from the environment;
// - The command emits a log message when a command runs.
func NewSuperCommand(p cmd.SuperCommandParams) *cmd.SuperCommand {
	p.Log = &cmd.Log{
		DefaultConfig: os.Getenv(osenv.CvmLoggingConfigEnvKey),
	}
	p.NotifyRun = runNotifier
	return cmd.NewSuperCommand(p)
}

// NewSubSuperCommand should be used to create a SuperCommand
// that runs as a subcommand of some other SuperCommand.
func NewSubSuperCommand(p cmd.SuperCommandParams) *cmd.SuperCommand {
	p.NotifyRun = runNotifier
	return cmd.NewSuperCommand(p)
}

// Info returns i with its documentation tidied for help output.
func Info(i *cmd.Info) *cmd.Info {
	i.Doc = strings.TrimSpace(i.Doc)
	return i
}

func runNotifier(name string) {
	logger.Infof("running %s [%s %s %s]", name, version.Current, runtime.Compiler, runtime.Version())
}
