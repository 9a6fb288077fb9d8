// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package release

import (
	"strings"

	"github.com/juju/errors"
)

// SelectAssetForPlatform returns the asset of rel whose name ends with
// platformSuffix. All assets are scanned and the last match in catalog order
// wins. ErrNoMatchingAsset is returned when nothing matches.
func SelectAssetForPlatform(rel Release, platformSuffix string) (Asset, error) {
	var (
		selected Asset
		found    bool
	)
	for _, asset := range rel.Assets {
		if strings.HasSuffix(asset.Name, platformSuffix) {
			selected = asset
			found = true
		}
	}
	if !found || platformSuffix == "" {
		return Asset{}, errors.Annotatef(ErrNoMatchingAsset, "release %q for platform %q", rel.Tag, platformSuffix)
	}
	return selected, nil
}

// ListDownloadURLs returns the download URL of every asset of rel, in asset
// order.
func ListDownloadURLs(rel Release) []string {
	urls := make([]string, len(rel.Assets))
	for i, asset := range rel.Assets {
		urls[i] = asset.URL
	}
	return urls
}
