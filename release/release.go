// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package release resolves cloudflared builds from a GitHub release catalog.
// It lists releases, resolves a single release by tag or as the catalog's
// latest, and picks the asset built for a given platform. It never downloads
// anything: callers receive download URLs only.
package release

import (
	"time"
)

// Release is a published entry of the remote catalog. Values are built
// once from the wire payload and are not modified afterwards.
type Release struct {
	// Tag is the version identifier of the release, e.g. "2024.10.0".
	Tag string

	// Name is the human readable title of the release.
	Name string

	// PublishedAt is the time the release was published. It is zero for
	// drafts.
	PublishedAt time.Time

	Prerelease bool
	Draft      bool

	// Assets are kept in the order supplied by the catalog.
	Assets []Asset
}

// Asset is a single downloadable file attached to a Release.
type Asset struct {
	Name        string
	URL         string
	Size        int64
	ContentType string
}

// FilterOptions controls which releases FilterReleases keeps.
type FilterOptions struct {
	IncludeDrafts      bool
	IncludePrereleases bool
}

// FilterReleases returns the releases permitted by opts, preserving the
// input order.
func FilterReleases(releases []Release, opts FilterOptions) []Release {
	result := make([]Release, 0, len(releases))
	for _, r := range releases {
		if r.Draft && !opts.IncludeDrafts {
			continue
		}
		if r.Prerelease && !opts.IncludePrereleases {
			continue
		}
		result = append(result, r)
	}
	return result
}
