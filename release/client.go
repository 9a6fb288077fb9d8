// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package release

import (
	"context"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/google/go-github/v55/github"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com/"

	// DefaultUserAgent identifies cvm to the catalog on every request.
	DefaultUserAgent = "cvm-cli"

	// DefaultPageSize is the number of releases requested per catalog page.
	DefaultPageSize = 100

	// LatestSelector selects the release the catalog marks as latest.
	LatestSelector = "latest"
)

// Logger is the subset of loggo.Logger used by the client.
type Logger interface {
	IsTraceEnabled() bool
	Tracef(string, ...interface{})
	Debugf(string, ...interface{})
}

// ClientConfig holds the parameters for NewClient. The zero value is
// usable and talks to api.github.com.
type ClientConfig struct {
	// BaseURL is the catalog API root.
	BaseURL string

	// UserAgent is sent as the User-Agent header of every request.
	UserAgent string

	// Token, if set, authorises requests against the catalog.
	Token string

	// HTTPClient is used for all requests. Its transport is wrapped, never
	// modified.
	HTTPClient *http.Client

	// PageSize is the number of releases requested per page.
	PageSize int

	Logger Logger
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Logger == nil {
		c.Logger = loggo.GetLogger("cvm.release")
	}
	return c
}

// Validate returns an error if the config cannot be used to build a client.
func (c ClientConfig) Validate() error {
	if c.PageSize < 0 || c.PageSize > 100 {
		return errors.NotValidf("page size %d", c.PageSize)
	}
	if c.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.NotValidf("base URL %q", c.BaseURL)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.NotValidf("relative base URL %q", c.BaseURL)
	}
	return nil
}

// Client reads the release catalog of a GitHub repository.
type Client struct {
	gh       *github.Client
	pageSize int
	logger   Logger
}

// NewClient returns a Client configured by config.
func NewClient(config ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	config = config.withDefaults()

	base := config.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if config.Token != "" {
		base = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token}),
			Base:   base,
		}
	}
	httpClient := *config.HTTPClient
	httpClient.Transport = loggingTransport{
		base:   base,
		logger: config.Logger,
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	gh := github.NewClient(&httpClient)
	gh.BaseURL = baseURL
	gh.UserAgent = config.UserAgent

	return &Client{
		gh:       gh,
		pageSize: config.PageSize,
		logger:   config.Logger,
	}, nil
}

// ListReleases returns every release of owner/repo in catalog order. Pages
// are requested one after the other.
func (c *Client) ListReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	opts := &github.ListOptions{PerPage: c.pageSize}

	var releases []Release
	for {
		page, resp, err := c.gh.Repositories.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return nil, classify(resp, err, "")
		}
		for _, raw := range page {
			rel, err := convertRelease(raw)
			if err != nil {
				return nil, errors.Trace(err)
			}
			releases = append(releases, rel)
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Debugf("listed %d releases of %s/%s", len(releases), owner, repo)
	return releases, nil
}

// ResolveByTag returns the release of owner/repo tagged tag. A
// VersionNotFoundError is returned if the catalog has no such tag.
func (c *Client) ResolveByTag(ctx context.Context, owner, repo, tag string) (Release, error) {
	raw, resp, err := c.gh.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		return Release{}, classify(resp, err, tag)
	}
	rel, err := convertRelease(raw)
	if err != nil {
		return Release{}, errors.Trace(err)
	}
	return rel, nil
}

// ResolveLatest returns the release the catalog marks as latest for
// owner/repo.
func (c *Client) ResolveLatest(ctx context.Context, owner, repo string) (Release, error) {
	raw, resp, err := c.gh.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return Release{}, classify(resp, err, LatestSelector)
	}
	rel, err := convertRelease(raw)
	if err != nil {
		return Release{}, errors.Trace(err)
	}
	c.logger.Debugf("latest release of %s/%s is %q", owner, repo, rel.Tag)
	return rel, nil
}

// Resolve returns the latest release when selector is LatestSelector, and
// the release tagged selector otherwise.
func (c *Client) Resolve(ctx context.Context, owner, repo, selector string) (Release, error) {
	if selector == LatestSelector {
		return c.ResolveLatest(ctx, owner, repo)
	}
	return c.ResolveByTag(ctx, owner, repo, selector)
}

// classify turns a go-github failure into one of the package errors. A
// non-empty tag means a 404 is reported as a missing version.
func classify(resp *github.Response, err error, tag string) error {
	var (
		errResp  *github.ErrorResponse
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
	)
	switch {
	case errors.As(err, &errResp):
		status := statusCode(errResp.Response)
		if status == http.StatusNotFound && tag != "" {
			return &VersionNotFoundError{Tag: tag}
		}
		return &RemoteRejectedError{StatusCode: status, Body: errResp.Message}
	case errors.As(err, &rateErr):
		return &RemoteRejectedError{StatusCode: statusCode(rateErr.Response), Body: rateErr.Message}
	case errors.As(err, &abuseErr):
		return &RemoteRejectedError{StatusCode: statusCode(abuseErr.Response), Body: abuseErr.Message}
	case resp != nil && resp.Response != nil && isSuccess(resp.StatusCode):
		// The request went through; only the payload was unreadable.
		return &DecodeError{Reason: err.Error()}
	}
	return newUnavailableError(err)
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// loggingTransport dumps requests and responses when trace logging is on.
type loggingTransport struct {
	base   http.RoundTripper
	logger Logger
}

// RoundTrip implements http.RoundTripper.
func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.logger.IsTraceEnabled() {
		if data, err := httputil.DumpRequestOut(req, false); err == nil {
			t.logger.Tracef("%s request %s", req.Method, data)
		} else {
			t.logger.Tracef("%s request DumpRequestOut error %s", req.Method, err.Error())
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if t.logger.IsTraceEnabled() {
		if data, err := httputil.DumpResponse(resp, true); err == nil {
			t.logger.Tracef("%s response %s", req.Method, data)
		} else {
			t.logger.Tracef("%s response DumpResponse error %s", req.Method, err.Error())
		}
	}
	return resp, nil
}
