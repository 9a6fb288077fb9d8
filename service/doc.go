// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package service provides access to the init system that supervises the
// tunnel daemon on the local host.
package service
