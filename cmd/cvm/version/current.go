// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package version

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/release"
	cvmversion "github.com/juju/cvm/version"
)

const currentCommandDoc = `
Report the version of the installed daemon, as printed by its --version
flag. With --check the version is compared with the latest release.

Examples:
    cvm version current
    cvm version current --check --format yaml
`

// NewCurrentCommand returns a command reporting the installed version.
func NewCurrentCommand() cmd.Command {
	return &currentCommand{runBinary: runBinaryVersion}
}

type currentCommand struct {
	releaseCommandBase

	out   cmd.Output
	check bool

	runBinary func(ctx context.Context, binary string) (string, error)
}

// CurrentVersion is the output of the current command.
type CurrentVersion struct {
	Binary          string `yaml:"binary" json:"binary"`
	Version         string `yaml:"version" json:"version"`
	Latest          string `yaml:"latest,omitempty" json:"latest,omitempty"`
	UpdateAvailable bool   `yaml:"update-available,omitempty" json:"update-available,omitempty"`

	checked bool
}

// Info implements cmd.Command.Info.
func (c *currentCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    "current",
		Purpose: "Show the installed daemon version.",
		Doc:     currentCommandDoc,
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *currentCommand) SetFlags(f *gnuflag.FlagSet) {
	c.releaseCommandBase.SetFlags(f)
	f.BoolVar(&c.check, "check", false, "Compare with the latest release")
	c.out.AddFlags(f, "plain", cvmcmd.WithFormatters("plain", formatCurrentPlain))
}

// Run implements cmd.Command.Run.
func (c *currentCommand) Run(ctx *cmd.Context) error {
	cfg, err := c.Config()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := c.StdContext()
	defer cancel()

	output, err := c.runBinary(stdCtx, cfg.Binary)
	if err != nil {
		return errors.Trace(err)
	}
	installed, err := cvmversion.ParseDaemonVersion(output)
	if err != nil {
		return errors.Trace(err)
	}
	result := CurrentVersion{
		Binary:  cfg.Binary,
		Version: installed.String(),
	}

	if c.check {
		client, _, err := c.releaseClient()
		if err != nil {
			return errors.Trace(err)
		}
		latest, err := client.Resolve(stdCtx, cfg.Owner, cfg.Repo, release.LatestSelector)
		if err != nil {
			return errors.Annotate(err, "resolving latest release")
		}
		latestVersion, err := cvmversion.ParseTag(latest.Tag)
		if err != nil {
			return errors.Trace(err)
		}
		result.Latest = latest.Tag
		result.UpdateAvailable = installed.Compare(latestVersion) < 0
		result.checked = true
	}
	return c.out.Write(ctx, result)
}

func formatCurrentPlain(writer io.Writer, value interface{}) error {
	current, ok := value.(CurrentVersion)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", current, value)
	}
	switch {
	case !current.checked:
		fmt.Fprintln(writer, current.Version)
	case current.UpdateAvailable:
		fmt.Fprintf(writer, "%s (update available: %s)\n", current.Version, current.Latest)
	default:
		fmt.Fprintf(writer, "%s (up to date)\n", current.Version)
	}
	return nil
}

func runBinaryVersion(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "--version").CombinedOutput()
	if err != nil {
		return "", errors.Annotatef(err, "running %s --version", binary)
	}
	return string(out), nil
}
