// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/juju/cmd/v3"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/cmd/cvm/service"
	"github.com/juju/cvm/cmd/cvm/version"
)

var cvmDoc = `
cvm manages the cloudflared tunnel daemon on this host.

It resolves daemon builds from the GitHub release feed and starts, stops
and reports on the daemon's systemd service.
`

// defaultSubcommands names the subcommand run when a super command is
// given no subcommand.
var defaultSubcommands = map[string]string{
	"version": "current",
	"service": "status",
}

// valueFlags names the flags of the default subcommands that take a
// separate value argument.
var valueFlags = map[string]bool{
	"timeout":        true,
	"service":        true,
	"format":         true,
	"o":              true,
	"output":         true,
	"logging-config": true,
	"log-file":       true,
}

// Main registers subcommands for the cvm executable, and hands over control
// to the cmd package. It returns the exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(NewCvmCommand(), ctx, withDefaultSubcommand(args[1:]))
}

// NewCvmCommand returns the cvm super command with all subcommands
// registered.
func NewCvmCommand() cmd.Command {
	ccmd := cvmcmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "cvm",
		Purpose: "Cloudflared version manager.",
		Doc:     cvmDoc,
	})
	registerCommands(ccmd)
	return ccmd
}

type commandRegistry interface {
	Register(cmd.Command)
}

// registerCommands registers commands in the specified registry.
func registerCommands(r commandRegistry) {
	r.Register(version.NewSuperCommand())
	r.Register(service.NewSuperCommand())
}

// withDefaultSubcommand inserts the default subcommand when args name a
// super command and nothing else, or only flags.
func withDefaultSubcommand(args []string) []string {
	if len(args) == 0 {
		return args
	}
	sub, ok := defaultSubcommands[args[0]]
	if !ok {
		return args
	}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "-h" || arg == "--help" {
			return args
		}
		if !strings.HasPrefix(arg, "-") {
			return args
		}
		name := strings.TrimLeft(arg, "-")
		if !strings.Contains(name, "=") && valueFlags[name] {
			i++
		}
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], sub)
	return append(out, args[1:]...)
}
