// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package common

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// ErrConnectionFailed is returned when no control plane session could
	// be established, typically for lack of privilege or because the
	// service manager is not reachable.
	ErrConnectionFailed = errors.ConstError("control plane connection failed")

	// ErrUnitNotFound is returned when the service manager has no unit
	// registered under the requested name.
	ErrUnitNotFound = errors.ConstError("unit not found")
)

// connectionError carries the cause behind ErrConnectionFailed.
type connectionError struct {
	cause error
}

// NewConnectionError returns an error matching ErrConnectionFailed that
// wraps cause.
func NewConnectionError(cause error) error {
	return &connectionError{cause: cause}
}

func (e *connectionError) Error() string {
	return fmt.Sprintf("%s: %v", ErrConnectionFailed, e.cause)
}

func (e *connectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}

func (e *connectionError) Unwrap() error {
	return e.cause
}

// unitNotFoundError names the missing unit.
type unitNotFoundError struct {
	unit string
}

// NewUnitNotFoundError returns an error matching both ErrUnitNotFound and
// errors.NotFound.
func NewUnitNotFoundError(unit string) error {
	return &unitNotFoundError{unit: unit}
}

func (e *unitNotFoundError) Error() string {
	return fmt.Sprintf("unit %q not found", e.unit)
}

func (e *unitNotFoundError) Is(target error) bool {
	return target == ErrUnitNotFound || target == errors.NotFound
}

// OperationFailedError is returned when the control plane rejected a
// request or a property could not be read.
type OperationFailedError struct {
	// Op is the failed operation, e.g. "start" or "read LoadState".
	Op     string
	Unit   string
	Reason string
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Op, e.Unit, e.Reason)
}

// IsOperationFailed reports whether err is, or wraps, an
// OperationFailedError.
func IsOperationFailed(err error) bool {
	var opErr *OperationFailedError
	return errors.As(err, &opErr)
}
