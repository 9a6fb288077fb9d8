// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package version

import (
	"io"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/release"
)

const listCommandDoc = `
List the releases of the daemon in catalog order, newest first, with the
download URL of the build for the platform. Releases with no build for
the platform show "-".

Drafts and prereleases are hidden unless --all is given.

Examples:
    cvm version list
    cvm version list --all --platform linux-arm64
    cvm version list --format json
`

// NewListCommand returns a command listing catalog releases.
func NewListCommand() cmd.Command {
	return &listCommand{}
}

type listCommand struct {
	releaseCommandBase

	out      cmd.Output
	all      bool
	platform string
}

// ReleaseSummary describes one release in the output of list.
type ReleaseSummary struct {
	Version    string `yaml:"version" json:"version"`
	Published  string `yaml:"published,omitempty" json:"published,omitempty"`
	Prerelease bool   `yaml:"prerelease,omitempty" json:"prerelease,omitempty"`
	Draft      bool   `yaml:"draft,omitempty" json:"draft,omitempty"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Info implements cmd.Command.Info.
func (c *listCommand) Info() *cmd.Info {
	return cvmcmd.Info(&cmd.Info{
		Name:    "list",
		Purpose: "List available daemon releases.",
		Doc:     listCommandDoc,
		Aliases: []string{"ls"},
	})
}

// SetFlags implements cmd.Command.SetFlags.
func (c *listCommand) SetFlags(f *gnuflag.FlagSet) {
	c.releaseCommandBase.SetFlags(f)
	f.BoolVar(&c.all, "all", false, "Include drafts and prereleases")
	f.StringVar(&c.platform, "platform", release.HostPlatform(), "Asset platform suffix")
	c.out.AddFlags(f, "tabular", cvmcmd.WithFormatters("tabular", formatListTabular))
}

// Run implements cmd.Command.Run.
func (c *listCommand) Run(ctx *cmd.Context) error {
	client, cfg, err := c.releaseClient()
	if err != nil {
		return errors.Trace(err)
	}
	stdCtx, cancel := c.StdContext()
	defer cancel()

	releases, err := client.ListReleases(stdCtx, cfg.Owner, cfg.Repo)
	if err != nil {
		return errors.Trace(err)
	}
	releases = release.FilterReleases(releases, release.FilterOptions{
		IncludeDrafts:      c.all,
		IncludePrereleases: c.all,
	})

	summaries := make([]ReleaseSummary, len(releases))
	for i, rel := range releases {
		summaries[i] = ReleaseSummary{
			Version:    rel.Tag,
			Prerelease: rel.Prerelease,
			Draft:      rel.Draft,
		}
		if !rel.PublishedAt.IsZero() {
			summaries[i].Published = rel.PublishedAt.UTC().Format("2006-01-02")
		}
		if asset, err := release.SelectAssetForPlatform(rel, c.platform); err == nil {
			summaries[i].URL = asset.URL
		}
	}
	return c.out.Write(ctx, summaries)
}

func formatListTabular(writer io.Writer, value interface{}) error {
	summaries, ok := value.([]ReleaseSummary)
	if !ok {
		return errors.Errorf("expected value of type %T, got %T", summaries, value)
	}
	if len(summaries) == 0 {
		return nil
	}

	tw := cvmcmd.TabWriter(writer)
	cvmcmd.PrintRow(tw, "Version", "Published", "Notes", "URL")
	for _, s := range summaries {
		notes := ""
		switch {
		case s.Draft:
			notes = "draft"
		case s.Prerelease:
			notes = "prerelease"
		}
		url := s.URL
		if url == "" {
			url = "-"
		}
		cvmcmd.PrintRow(tw, s.Version, s.Published, notes, url)
	}
	return tw.Flush()
}
