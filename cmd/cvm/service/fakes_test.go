// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service_test

import (
	"context"
	"time"

	"github.com/juju/testing"

	"github.com/juju/cvm/service"
	"github.com/juju/cvm/service/common"
	"github.com/juju/cvm/service/systemd"
)

// fakeController returns the queued statuses in order, repeating the last
// one once the queue is exhausted.
type fakeController struct {
	testing.Stub

	statuses []common.Status
	released bool
	deadline time.Time
}

func (f *fakeController) factory(ctx context.Context) (service.Controller, func(), error) {
	f.AddCall("NewController")
	f.deadline, _ = ctx.Deadline()
	if err := f.NextErr(); err != nil {
		return nil, nil, err
	}
	return f, func() { f.released = true }, nil
}

func (f *fakeController) Start(ctx context.Context, name string) (systemd.Ack, error) {
	f.AddCall("Start", name)
	if err := f.NextErr(); err != nil {
		return systemd.Ack{}, err
	}
	return systemd.Ack{Unit: common.UnitName(name), JobID: 42}, nil
}

func (f *fakeController) Stop(ctx context.Context, name string) (systemd.Ack, error) {
	f.AddCall("Stop", name)
	if err := f.NextErr(); err != nil {
		return systemd.Ack{}, err
	}
	return systemd.Ack{Unit: common.UnitName(name), JobID: 43}, nil
}

func (f *fakeController) GetStatus(ctx context.Context, name string) (common.Status, error) {
	f.AddCall("GetStatus", name)
	if err := f.NextErr(); err != nil {
		return common.Status{}, err
	}
	status := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	status.Service = name
	return status, nil
}

func state(active, sub string) common.Status {
	return common.Status{LoadState: common.LoadStateLoaded, ActiveState: active, SubState: sub}
}
