// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package release

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// ErrRemoteUnavailable is returned when the catalog could not be reached,
	// including when the caller's deadline expires first.
	ErrRemoteUnavailable = errors.ConstError("release catalog unavailable")

	// ErrNoMatchingAsset is returned when a release carries no asset for the
	// requested platform.
	ErrNoMatchingAsset = errors.ConstError("no matching asset")
)

// unavailableError carries the transport failure behind ErrRemoteUnavailable.
type unavailableError struct {
	cause error
}

func newUnavailableError(cause error) error {
	return &unavailableError{cause: cause}
}

func (e *unavailableError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRemoteUnavailable, e.cause)
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}

// RemoteRejectedError is returned when the catalog answered with a
// non-success status.
type RemoteRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RemoteRejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("release catalog rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("release catalog rejected request with status %d: %s", e.StatusCode, e.Body)
}

// IsRemoteRejected reports whether err is, or wraps, a RemoteRejectedError.
func IsRemoteRejected(err error) bool {
	var rejected *RemoteRejectedError
	return errors.As(err, &rejected)
}

// VersionNotFoundError is returned when the catalog reports that the
// requested tag does not exist.
type VersionNotFoundError struct {
	Tag string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found", e.Tag)
}

// Is allows VersionNotFoundError to be matched against errors.NotFound.
func (e *VersionNotFoundError) Is(target error) bool {
	return target == errors.NotFound
}

// DecodeError is returned when a catalog payload cannot be turned into a
// Release, either because it is malformed or because a required field is
// absent.
type DecodeError struct {
	// Field is the JSON name of the missing field, if any.
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding release: missing required field %q", e.Field)
	}
	return fmt.Sprintf("decoding release: %s", e.Reason)
}

// Is allows DecodeError to be matched against errors.NotValid.
func (e *DecodeError) Is(target error) bool {
	return target == errors.NotValid
}
