// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package osenv

const (
	CvmHomeEnvKey          = "CVM_HOME"
	CvmLoggingConfigEnvKey = "CVM_LOGGING_CONFIG"

	// Overrides for the matching config.yaml keys.
	CvmOwnerEnvKey   = "CVM_OWNER"
	CvmRepoEnvKey    = "CVM_REPO"
	CvmServiceEnvKey = "CVM_SERVICE"
	CvmAPIURLEnvKey  = "CVM_API_URL"
	CvmTimeoutEnvKey = "CVM_TIMEOUT"

	// GitHubTokenEnvKey holds the token used to authorise catalog
	// requests. It is never read from a file.
	GitHubTokenEnvKey = "GITHUB_TOKEN"
)
