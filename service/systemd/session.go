// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package systemd

import (
	"context"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
	"github.com/godbus/dbus/v5"
	"github.com/juju/errors"

	"github.com/juju/cvm/service/common"
)

const (
	systemdBusName      = "org.freedesktop.systemd1"
	managerObjectPath   = dbus.ObjectPath("/org/freedesktop/systemd1")
	managerGetUnit      = "org.freedesktop.systemd1.Manager.GetUnit"
	propertiesGet       = "org.freedesktop.DBus.Properties.Get"
	unitInterface       = "org.freedesktop.systemd1.Unit"
	noSuchUnitErrorName = "org.freedesktop.systemd1.NoSuchUnit"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/session_mock.go github.com/juju/cvm/service/systemd Session

// Session is an open connection to the systemd control plane. A Session is
// not safe for concurrent use and must be closed by its owner.
type Session interface {
	// StartUnitContext enqueues a start job for the named unit.
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)

	// StopUnitContext enqueues a stop job for the named unit.
	StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)

	// GetUnitContext returns the object path of a loaded unit.
	GetUnitContext(ctx context.Context, name string) (dbus.ObjectPath, error)

	// GetUnitPathPropertyContext reads a single property of the object at
	// path.
	GetUnitPathPropertyContext(ctx context.Context, path dbus.ObjectPath, iface, property string) (dbus.Variant, error)

	// Close releases the session.
	Close()
}

// SessionFactory opens a new Session.
type SessionFactory = func(ctx context.Context) (Session, error)

// NewSession is the SessionFactory used by Connect.
var NewSession SessionFactory = newDBusSession

// Connect opens a control plane session. Any failure is reported as
// common.ErrConnectionFailed and is not retried.
func Connect(ctx context.Context) (Session, error) {
	session, err := NewSession(ctx)
	if err != nil {
		logger.Errorf("failed to connect to the systemd control plane: %v", err)
		return nil, common.NewConnectionError(err)
	}
	return session, nil
}

// dbusSession talks to systemd over the system bus. Job requests go
// through go-systemd; GetUnit and property reads are plain method calls.
type dbusSession struct {
	jobs *sddbus.Conn
	bus  *dbus.Conn
}

func newDBusSession(ctx context.Context) (Session, error) {
	jobs, err := sddbus.NewWithContext(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "connecting to systemd")
	}

	bus, err := dbus.SystemBusPrivate()
	if err != nil {
		jobs.Close()
		return nil, errors.Annotate(err, "connecting to the system bus")
	}
	if err := bus.Auth(nil); err != nil {
		_ = bus.Close()
		jobs.Close()
		return nil, errors.Annotate(err, "authenticating to the system bus")
	}
	if err := bus.Hello(); err != nil {
		_ = bus.Close()
		jobs.Close()
		return nil, errors.Annotate(err, "greeting the system bus")
	}

	// The deadline may have passed while dialling the second connection.
	if err := ctx.Err(); err != nil {
		_ = bus.Close()
		jobs.Close()
		return nil, errors.Trace(err)
	}
	return &dbusSession{jobs: jobs, bus: bus}, nil
}

func (s *dbusSession) StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error) {
	return s.jobs.StartUnitContext(ctx, name, mode, ch)
}

func (s *dbusSession) StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error) {
	return s.jobs.StopUnitContext(ctx, name, mode, ch)
}

func (s *dbusSession) GetUnitContext(ctx context.Context, name string) (dbus.ObjectPath, error) {
	var path dbus.ObjectPath
	err := s.bus.Object(systemdBusName, managerObjectPath).
		CallWithContext(ctx, managerGetUnit, 0, name).
		Store(&path)
	return path, err
}

func (s *dbusSession) GetUnitPathPropertyContext(ctx context.Context, path dbus.ObjectPath, iface, property string) (dbus.Variant, error) {
	var value dbus.Variant
	err := s.bus.Object(systemdBusName, path).
		CallWithContext(ctx, propertiesGet, 0, iface, property).
		Store(&value)
	return value, err
}

func (s *dbusSession) Close() {
	_ = s.bus.Close()
	s.jobs.Close()
}

// dbusErrorName returns the D-Bus error name carried by err, if any.
func dbusErrorName(err error) string {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name
	}
	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name
	}
	return ""
}
