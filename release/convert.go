// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package release

import (
	"fmt"

	"github.com/google/go-github/v55/github"
)

// convertRelease builds a Release from the decoded catalog payload. The tag
// of the release and the name and download URL of each asset are required.
func convertRelease(raw *github.RepositoryRelease) (Release, error) {
	if raw == nil {
		return Release{}, &DecodeError{Reason: "null release entry"}
	}
	if raw.TagName == nil || *raw.TagName == "" {
		return Release{}, &DecodeError{Field: "tag_name"}
	}

	rel := Release{
		Tag:        raw.GetTagName(),
		Name:       raw.GetName(),
		Prerelease: raw.GetPrerelease(),
		Draft:      raw.GetDraft(),
		Assets:     make([]Asset, 0, len(raw.Assets)),
	}
	if raw.PublishedAt != nil {
		rel.PublishedAt = raw.PublishedAt.Time
	}

	for i, rawAsset := range raw.Assets {
		asset, err := convertAsset(rawAsset)
		if err != nil {
			if decodeErr, ok := err.(*DecodeError); ok && decodeErr.Field != "" {
				decodeErr.Field = fmt.Sprintf("assets[%d].%s", i, decodeErr.Field)
			}
			return Release{}, err
		}
		rel.Assets = append(rel.Assets, asset)
	}
	return rel, nil
}

func convertAsset(raw *github.ReleaseAsset) (Asset, error) {
	if raw == nil {
		return Asset{}, &DecodeError{Reason: "null asset entry"}
	}
	if raw.Name == nil || *raw.Name == "" {
		return Asset{}, &DecodeError{Field: "name"}
	}
	if raw.BrowserDownloadURL == nil || *raw.BrowserDownloadURL == "" {
		return Asset{}, &DecodeError{Field: "browser_download_url"}
	}
	return Asset{
		Name:        raw.GetName(),
		URL:         raw.GetBrowserDownloadURL(),
		Size:        int64(raw.GetSize()),
		ContentType: raw.GetContentType(),
	}, nil
}
