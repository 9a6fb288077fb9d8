// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/cvm/service/common"
)

// ReplaceMode is the job mode used for start and stop requests: a new job
// supersedes any queued conflicting job for the same unit.
const ReplaceMode = "replace"

// Unit properties read by GetStatus.
const (
	LoadStateProperty   = "LoadState"
	ActiveStateProperty = "ActiveState"
	SubStateProperty    = "SubState"
)

var logger = loggo.GetLogger("cvm.service.systemd")

// Ack acknowledges that systemd accepted a job. It does not mean the job
// has run.
type Ack struct {
	Unit  string
	JobID int
}

// Controller starts, stops and inspects services through a Session. It
// caches nothing: every call goes to the control plane.
type Controller struct {
	session Session
}

// NewController returns a Controller using session. The caller keeps
// ownership of the session and must close it.
func NewController(session Session) *Controller {
	return &Controller{session: session}
}

// Start requests the named service to be started. It returns once systemd
// has accepted the job.
func (c *Controller) Start(ctx context.Context, name string) (Ack, error) {
	unit := common.UnitName(name)
	jobID, err := c.session.StartUnitContext(ctx, unit, ReplaceMode, nil)
	if err != nil {
		return Ack{}, c.operationFailed("start", unit, err)
	}
	logger.Debugf("start job %d queued for %q", jobID, unit)
	return Ack{Unit: unit, JobID: jobID}, nil
}

// Stop requests the named service to be stopped. It returns once systemd
// has accepted the job.
func (c *Controller) Stop(ctx context.Context, name string) (Ack, error) {
	unit := common.UnitName(name)
	jobID, err := c.session.StopUnitContext(ctx, unit, ReplaceMode, nil)
	if err != nil {
		return Ack{}, c.operationFailed("stop", unit, err)
	}
	logger.Debugf("stop job %d queued for %q", jobID, unit)
	return Ack{Unit: unit, JobID: jobID}, nil
}

// GetStatus resolves the unit of the named service and reads its load,
// active and sub states. Either all three are read or an error is
// returned.
func (c *Controller) GetStatus(ctx context.Context, name string) (common.Status, error) {
	unit := common.UnitName(name)
	path, err := c.session.GetUnitContext(ctx, unit)
	if dbusErrorName(err) == noSuchUnitErrorName {
		logger.Debugf("unit %q is not loaded", unit)
		return common.Status{}, common.NewUnitNotFoundError(unit)
	} else if err != nil {
		return common.Status{}, c.operationFailed("get", unit, err)
	}

	status := common.Status{Service: name}
	for _, prop := range []struct {
		name  string
		value *string
	}{
		{LoadStateProperty, &status.LoadState},
		{ActiveStateProperty, &status.ActiveState},
		{SubStateProperty, &status.SubState},
	} {
		value, err := c.readStringProperty(ctx, unit, path, prop.name)
		if err != nil {
			return common.Status{}, errors.Trace(err)
		}
		*prop.value = value
	}
	return status, nil
}

func (c *Controller) readStringProperty(ctx context.Context, unit string, path dbus.ObjectPath, property string) (string, error) {
	op := "read " + property + " of"
	variant, err := c.session.GetUnitPathPropertyContext(ctx, path, unitInterface, property)
	if err != nil {
		return "", c.operationFailed(op, unit, err)
	}
	value, ok := variant.Value().(string)
	if !ok {
		return "", c.operationFailed(op, unit, fmt.Errorf("unexpected value type %q", variant.Signature().String()))
	}
	return value, nil
}

func (c *Controller) operationFailed(op, unit string, cause error) error {
	err := &common.OperationFailedError{
		Op:     op,
		Unit:   unit,
		Reason: cause.Error(),
	}
	logger.Errorf("%v", err)
	return err
}
