// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service_test

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/juju/cvm/service"
	"github.com/juju/cvm/service/common"
	"github.com/juju/cvm/service/systemd"
	"github.com/juju/cvm/service/systemd/mocks"
)

type discoverySuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&discoverySuite{})

func (s *discoverySuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	service.PatchGOOS(s, "linux")
	service.PatchIsRunningSystemd(s, true)
}

func (s *discoverySuite) TestNewController(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	session := mocks.NewMockSession(ctrl)
	service.PatchConnect(s, func(context.Context) (systemd.Session, error) {
		return session, nil
	})

	path := dbus.ObjectPath("/org/freedesktop/systemd1/unit/cloudflared_2eservice")
	session.EXPECT().GetUnitContext(gomock.Any(), "cloudflared.service").Return(path, nil)
	for _, prop := range []string{"LoadState", "ActiveState", "SubState"} {
		session.EXPECT().GetUnitPathPropertyContext(gomock.Any(), path, gomock.Any(), prop).
			Return(dbus.MakeVariant("x"), nil)
	}
	session.EXPECT().Close()

	controller, release, err := service.NewController(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	status, err := controller.GetStatus(context.Background(), "cloudflared")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(status.Service, gc.Equals, "cloudflared")
	release()
}

func (s *discoverySuite) TestNewControllerConnectFailed(c *gc.C) {
	service.PatchConnect(s, func(context.Context) (systemd.Session, error) {
		return nil, common.NewConnectionError(errors.New("permission denied"))
	})

	_, _, err := service.NewController(context.Background())
	c.Check(err, jc.ErrorIs, common.ErrConnectionFailed)
}

func (s *discoverySuite) TestNewControllerNoSystemd(c *gc.C) {
	service.PatchIsRunningSystemd(s, false)
	service.PatchConnect(s, func(context.Context) (systemd.Session, error) {
		c.Fatalf("unexpected connect")
		return nil, nil
	})

	_, _, err := service.NewController(context.Background())
	c.Check(err, jc.ErrorIs, common.ErrConnectionFailed)
	c.Check(err, gc.ErrorMatches, "control plane connection failed: systemd \\(based on local host\\) not found")
}

func (s *discoverySuite) TestNewControllerNotSupported(c *gc.C) {
	service.PatchGOOS(s, "darwin")

	_, _, err := service.NewController(context.Background())
	c.Check(err, jc.ErrorIs, service.ErrNotSupported)
	c.Check(err, gc.ErrorMatches, "darwin: service management not supported on this platform")
}
