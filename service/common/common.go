// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package common

import (
	"strings"
)

// UnitSuffix is appended to a service name to address its systemd unit.
const UnitSuffix = ".service"

// Known load states of a unit. The control plane may report others.
const (
	LoadStateLoaded   = "loaded"
	LoadStateNotFound = "not-found"
	LoadStateError    = "error"
	LoadStateMasked   = "masked"
)

// Known active states of a unit. The control plane may report others.
const (
	ActiveStateActive       = "active"
	ActiveStateInactive     = "inactive"
	ActiveStateActivating   = "activating"
	ActiveStateDeactivating = "deactivating"
	ActiveStateFailed       = "failed"
	ActiveStateReloading    = "reloading"
)

// UnitName returns the unit addressing the named service, e.g.
// "cloudflared" becomes "cloudflared.service". Names that already carry the
// suffix are returned unchanged.
func UnitName(service string) string {
	if strings.HasSuffix(service, UnitSuffix) {
		return service
	}
	return service + UnitSuffix
}

// Status is a point in time snapshot of a service as reported by the
// control plane. The state fields are copied verbatim and are never
// normalised, so values unknown to this package are preserved.
type Status struct {
	// Service is the logical name the status was requested for.
	Service string `json:"service" yaml:"service"`

	// LoadState is whether the unit definition is known and loaded.
	LoadState string `json:"load-state" yaml:"load-state"`

	// ActiveState is the high level run state of the unit.
	ActiveState string `json:"active-state" yaml:"active-state"`

	// SubState is the unit type specific run state, e.g. "running".
	SubState string `json:"sub-state" yaml:"sub-state"`
}

// Running reports whether the unit is loaded and active.
func (s Status) Running() bool {
	return s.LoadState == LoadStateLoaded && s.ActiveState == ActiveStateActive
}
