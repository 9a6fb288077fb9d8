// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package version_test

import (
	"context"

	"github.com/juju/cmd/v3/cmdtesting"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/cvm/cmd/cvm/version"
	"github.com/juju/cvm/config"
	"github.com/juju/cvm/release"
)

type baseSuite struct {
	testing.IsolationSuite

	client *fakeReleaseClient
	config *config.Config
}

func (s *baseSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.client = &fakeReleaseClient{releases: testReleases()}
	s.config = config.Default()
}

type currentSuite struct {
	baseSuite

	binaryOutput string
	binaryErr    error
	ranBinary    string
}

var _ = gc.Suite(&currentSuite{})

func (s *currentSuite) SetUpTest(c *gc.C) {
	s.baseSuite.SetUpTest(c)
	s.binaryOutput = "cloudflared version 2024.9.0 (built 2024-09-02-1200 UTC)\n"
	s.binaryErr = nil
	s.ranBinary = ""
}

func (s *currentSuite) runBinary(ctx context.Context, binary string) (string, error) {
	s.ranBinary = binary
	return s.binaryOutput, s.binaryErr
}

func (s *currentSuite) run(c *gc.C, args ...string) (string, error) {
	command := version.NewCurrentCommandForTest(s.client, s.config, s.runBinary)
	ctx, err := cmdtesting.RunCommand(c, command, args...)
	if err != nil {
		return "", err
	}
	return cmdtesting.Stdout(ctx), nil
}

func (s *currentSuite) TestCurrent(c *gc.C) {
	out, err := s.run(c)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, "2024.9.0\n")
	c.Check(s.ranBinary, gc.Equals, "cloudflared")
	s.client.CheckNoCalls(c)
}

func (s *currentSuite) TestCurrentConfiguredBinary(c *gc.C) {
	s.config.Binary = "/opt/cloudflared/bin/cloudflared"
	_, err := s.run(c)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(s.ranBinary, gc.Equals, "/opt/cloudflared/bin/cloudflared")
}

func (s *currentSuite) TestCurrentCheckUpdateAvailable(c *gc.C) {
	s.client.releases = testReleases()[1:]
	out, err := s.run(c, "--check")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, "2024.9.0 (update available: 2024.10.0)\n")
	s.client.CheckCall(c, 0, "Resolve", "cloudflare", "cloudflared", "latest")
}

func (s *currentSuite) TestCurrentCheckUpToDate(c *gc.C) {
	s.binaryOutput = "cloudflared version 2024.10.0 (built unknown)\n"
	s.client.releases = testReleases()[1:]
	out, err := s.run(c, "--check")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, "2024.10.0 (up to date)\n")
}

func (s *currentSuite) TestCurrentCheckYAML(c *gc.C) {
	s.client.releases = testReleases()[1:]
	out, err := s.run(c, "--check", "--format", "yaml")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, jc.YAMLEquals, map[string]interface{}{
		"binary":           "cloudflared",
		"version":          "2024.9.0",
		"latest":           "2024.10.0",
		"update-available": true,
	})
}

func (s *currentSuite) TestCurrentBinaryFails(c *gc.C) {
	s.binaryErr = errors.New(`exec: "cloudflared": executable file not found in $PATH`)
	_, err := s.run(c)
	c.Check(err, gc.ErrorMatches, `exec: "cloudflared": executable file not found in \$PATH`)
}

func (s *currentSuite) TestCurrentUnparseableOutput(c *gc.C) {
	s.binaryOutput = "something else entirely"
	_, err := s.run(c)
	c.Check(err, jc.ErrorIs, errors.NotValid)
}

func (s *currentSuite) TestCurrentCheckCatalogUnavailable(c *gc.C) {
	s.client.SetErrors(release.ErrRemoteUnavailable)
	_, err := s.run(c, "--check")
	c.Check(err, jc.ErrorIs, release.ErrRemoteUnavailable)
	c.Check(err, gc.ErrorMatches, "resolving latest release: .*")
}

type listSuite struct {
	baseSuite
}

var _ = gc.Suite(&listSuite{})

func (s *listSuite) run(c *gc.C, args ...string) (string, error) {
	ctx, err := cmdtesting.RunCommand(c, version.NewListCommandForTest(s.client, s.config), args...)
	if err != nil {
		return "", err
	}
	return cmdtesting.Stdout(ctx), nil
}

func (s *listSuite) TestList(c *gc.C) {
	out, err := s.run(c, "--platform", "linux-amd64")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, `
Version   Published  Notes URL
2024.10.0 2024-10-03       https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-linux-amd64
2024.9.0                   -
`[1:])
	s.client.CheckCall(c, 0, "ListReleases", "cloudflare", "cloudflared")
}

func (s *listSuite) TestListAll(c *gc.C) {
	out, err := s.run(c, "--all", "--platform", "linux-arm64")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, `
Version   Published  Notes      URL
2024.10.1 2024-10-05 prerelease -
2024.10.0 2024-10-03            https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-linux-arm64
2024.9.0                        -
2024.8.0             draft      -
`[1:])
}

func (s *listSuite) TestListJSON(c *gc.C) {
	out, err := s.run(c, "--platform", "windows-amd64", "--format", "json")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, jc.JSONEquals, []version.ReleaseSummary{{
		Version:   "2024.10.0",
		Published: "2024-10-03",
	}, {
		Version: "2024.9.0",
		URL:     "https://github.com/cloudflare/cloudflared/releases/download/2024.9.0/cloudflared-windows-amd64",
	}})
}

func (s *listSuite) TestListEmpty(c *gc.C) {
	s.client.releases = nil
	out, err := s.run(c)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, "")
}

func (s *listSuite) TestListRejected(c *gc.C) {
	s.client.SetErrors(&release.RemoteRejectedError{StatusCode: 403, Body: "API rate limit exceeded"})
	_, err := s.run(c)
	c.Check(release.IsRemoteRejected(err), jc.IsTrue)
}

type resolveSuite struct {
	baseSuite
}

var _ = gc.Suite(&resolveSuite{})

func (s *resolveSuite) run(c *gc.C, args ...string) (string, error) {
	ctx, err := cmdtesting.RunCommand(c, version.NewResolveCommandForTest(s.client, s.config), args...)
	if err != nil {
		return "", err
	}
	return cmdtesting.Stdout(ctx), nil
}

func (s *resolveSuite) TestResolveTag(c *gc.C) {
	out, err := s.run(c, "2024.10.0", "--platform", "linux-amd64", "--format", "yaml")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, jc.YAMLEquals, version.ResolvedAsset{
		Version: "2024.10.0",
		Asset:   "cloudflared-linux-amd64",
		Size:    1024,
		URL:     "https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-linux-amd64",
	})
	s.client.CheckCall(c, 0, "Resolve", "cloudflare", "cloudflared", "2024.10.0")
}

func (s *resolveSuite) TestResolveLatestTabular(c *gc.C) {
	s.client.releases = testReleases()[1:]
	out, err := s.run(c, "latest", "--platform", "darwin-arm64")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Matches, `Version +Asset +Size +URL\n2024\.10\.0 +cloudflared-darwin-arm64 +1\.0 KiB +https://.*/2024\.10\.0/cloudflared-darwin-arm64\n`)
	s.client.CheckCall(c, 0, "Resolve", "cloudflare", "cloudflared", "latest")
}

func (s *resolveSuite) TestResolveNoMatchingAsset(c *gc.C) {
	_, err := s.run(c, "2024.9.0", "--platform", "linux-amd64")
	c.Check(err, jc.ErrorIs, release.ErrNoMatchingAsset)
}

func (s *resolveSuite) TestResolveUnknownTag(c *gc.C) {
	_, err := s.run(c, "v999")
	c.Check(err, gc.ErrorMatches, `version "v999" not found`)
	c.Check(err, jc.ErrorIs, errors.NotFound)
}

func (s *resolveSuite) TestResolveNoArgs(c *gc.C) {
	_, err := s.run(c)
	c.Check(err, gc.ErrorMatches, `no version specified, expected a tag or "latest"`)
}

func (s *resolveSuite) TestResolveExtraArgs(c *gc.C) {
	_, err := s.run(c, "latest", "extra")
	c.Check(err, gc.ErrorMatches, `unrecognized args: \["extra"\]`)
}

type urlsSuite struct {
	baseSuite
}

var _ = gc.Suite(&urlsSuite{})

func (s *urlsSuite) TestURLs(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, version.NewURLsCommandForTest(s.client, s.config), "2024.10.0")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, `
https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-darwin-arm64
https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-linux-amd64
https://github.com/cloudflare/cloudflared/releases/download/2024.10.0/cloudflared-linux-arm64
`[1:])
}

func (s *urlsSuite) TestURLsEmptyRelease(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, version.NewURLsCommandForTest(s.client, s.config), "2024.8.0")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cmdtesting.Stdout(ctx), gc.Equals, "")
}

func (s *urlsSuite) TestURLsConfiguredRepo(c *gc.C) {
	s.config.Owner = "example"
	s.config.Repo = "tunnel"
	_, err := cmdtesting.RunCommand(c, version.NewURLsCommandForTest(s.client, s.config), "latest")
	c.Assert(err, jc.ErrorIsNil)
	s.client.CheckCall(c, 0, "Resolve", "example", "tunnel", "latest")
}
