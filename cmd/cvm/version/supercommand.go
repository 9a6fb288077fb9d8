// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package version holds the commands that inspect the tunnel daemon's
// installed version and its release catalog.
package version

import (
	"context"

	"github.com/juju/cmd/v3"
	"github.com/juju/errors"

	cvmcmd "github.com/juju/cvm/cmd"
	"github.com/juju/cvm/config"
	"github.com/juju/cvm/release"
)

const versionCommandDoc = `
"cvm version" inspects the installed daemon and the releases published
for it. With no subcommand it reports the installed version.
`

// NewSuperCommand returns the "version" super command.
func NewSuperCommand() cmd.Command {
	versionCmd := cvmcmd.NewSubSuperCommand(cmd.SuperCommandParams{
		Name:    "version",
		Purpose: "Inspect daemon versions and releases.",
		Doc:     versionCommandDoc,
	})
	versionCmd.Register(NewCurrentCommand())
	versionCmd.Register(NewListCommand())
	versionCmd.Register(NewResolveCommand())
	versionCmd.Register(NewURLsCommand())
	return versionCmd
}

// ReleaseClient is the part of the release catalog used by the version
// commands.
type ReleaseClient interface {
	ListReleases(ctx context.Context, owner, repo string) ([]release.Release, error)
	Resolve(ctx context.Context, owner, repo, selector string) (release.Release, error)
}

var newReleaseClient = func(cfg release.ClientConfig) (ReleaseClient, error) {
	return release.NewClient(cfg)
}

// releaseCommandBase is embedded by the commands that read the catalog.
type releaseCommandBase struct {
	cvmcmd.CommandBase

	client ReleaseClient
}

// releaseClient returns the catalog client along with the configuration
// it was built from.
func (c *releaseCommandBase) releaseClient() (ReleaseClient, *config.Config, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	if c.client != nil {
		return c.client, cfg, nil
	}
	client, err := newReleaseClient(cfg.ClientConfig())
	if err != nil {
		return nil, nil, errors.Annotate(err, "creating release client")
	}
	return client, cfg, nil
}

// selectorArg parses the single <tag|latest> argument.
func selectorArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New("no version specified, expected a tag or \"latest\"")
	}
	return args[0], args[1:], nil
}
