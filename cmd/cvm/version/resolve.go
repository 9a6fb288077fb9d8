// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package version

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/release"
)

const resolveCommandDoc = `
Resolve a release by tag, or the latest release, and show the asset built
for the platform.

Examples:
    cvm version resolve latest
    cvm version resolve 2024.6.1 --platform darwin-arm64
`

// NewResolveCommand returns a command resolving a release asset.
func NewResolveCommand() cmd.Command {
	return &resolveCommand{}
}

type resolveCommand struct {
	releaseCommandBase

	out      cmd.Output
	selector string
	platform string
}

// ResolvedAsset is the output of resolve.
type ResolvedAsset struct {
	Version string `yaml:"version" json:"version"`
	Asset   string `yaml:"asset" json:"asset"`
	Size    int64  `yaml:"size" json:"size"`
	URL     string `yaml:"url" json:"url"`
}

// Info implements cmd.Command.Info.
func (c *resolveCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    "resolve",
		Args:    "<tag>|latest",
		Purpose: "Show the platform asset of a release.",
		Doc:     resolveCommandDoc,
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *resolveCommand) SetFlags(f *gnuflag.FlagSet) {
	c.releaseCommandBase.SetFlags(f)
	f.StringVar(&c.platform, "platform", release.HostPlatform(), "Asset platform suffix")
	c.out.AddFlags(f, "tabular", cvmcmd.WithFormatters("tabular", formatResolvedTabular))
}

// Init implements cmd.Command.Init.
func (c *resolveCommand) Init(args []string) error {
	selector, args, err := selectorArg(args)
	if err != nil {
		return errors.Trace(err)
	}
	c.selector = selector
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.Run.
func (c *resolveCommand) Run(ctx *cmd.Context) error {
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
	asset, err := release.SelectAssetForPlatform(rel, c.platform)
	if err != nil {
		return errors.Trace(err)
	}
	return c.out.Write(ctx, ResolvedAsset{
		Version: rel.Tag,
		Asset:   asset.Name,
		Size:    asset.Size,
		URL:     asset.URL,
	})
}

func formatResolvedTabular(writer io.Writer, value interface{}) error {
	resolved, ok := value.(ResolvedAsset)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", resolved, value)
	}
	tw := cvmcmd.TabWriter(writer)
	cvmcmd.PrintRow(tw, "Version", "Asset", "Size", "URL")
	cvmcmd.PrintRow(tw, resolved.Version, resolved.Asset, humanize.IBytes(uint64(resolved.Size)), resolved.URL)
	return tw.Flush()
}
