// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package version

import (
	"fmt"
	"io"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/release"
)

const urlsCommandDoc = `
Print the download URL of every asset of a release, in catalog order.

Examples:
    cvm version urls latest
    cvm version urls 2024.6.1 --format json
`

// NewURLsCommand returns a command listing the asset URLs of a release.
func NewURLsCommand() cmd.Command {
	return &urlsCommand{}
}

type urlsCommand struct {
	releaseCommandBase

	out      cmd.Output
	selector string
}

// Info implements cmd.Command.Info.
func (c *urlsCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    "urls",
		Args:    "<tag>|latest",
		Purpose: "List the download URLs of a release.",
		Doc:     urlsCommandDoc,
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *urlsCommand) SetFlags(f *gnuflag.FlagSet) {
	c.releaseCommandBase.SetFlags(f)
	c.out.AddFlags(f, "plain", cvmcmd.WithFormatters("plain", formatURLsPlain))
}

// Init implements cmd.Command.Init.
func (c *urlsCommand) Init(args []string) error {
	selector, args, err := selectorArg(args)
	if err != nil {
		return errors.Trace(err)
	}
	c.selector = selector
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.Run.
func (c *urlsCommand) Run(ctx *cmd.Context) error {
	client, cfg, err := c.releaseClient()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := c.StdContext()
	defer cancel()

	rel, err := client.Resolve(stdCtx, cfg.Owner, cfg.Repo, c.selector)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, release.ListDownloadURLs(rel))
}

func formatURLsPlain(writer io.Writer, value interface{}) error {
	urls, ok := value.([]string)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", urls, value)
	}
	for _, url := range urls {
		fmt.Fprintln(writer, url)
	}
	return nil
}
