package locker_test

import (
	"testing"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertInvariants(t *testing.T, l *locker.Locker) {
	t.Helper()
	assert.Equal(t, l.Status() == locker.Occupied, l.BoxID() != nil, "box ref iff OCCUPIED")
	assert.Equal(t, l.Status() == locker.Reserved, l.ReservedOrderID() != nil, "reserved order iff RESERVED")
	assert.Equal(t, l.Status() == locker.Maintenance, l.MaintenanceReason() != "", "reason iff MAINTENANCE")
}

func newEmptyLocker(t *testing.T) *locker.Locker {
	t.Helper()
	l, err := locker.NewLocker(1, 1)
	require.NoError(t, err)
	return l
}

func TestNewLocker(t *testing.T) {
	l, err := locker.NewLocker(3, 4)

	require.NoError(t, err)
	require.NoError(t, l.Validate())
	require.NoError(t, l.ID().Validate())
	assert.Equal(t, 3, l.PortID())
	assert.Equal(t, 4, l.Number())
	assert.Equal(t, locker.Empty, l.Status())
	assertInvariants(t, l)
}

func TestNewLocker_InvalidArguments(t *testing.T) {
	_, err := locker.NewLocker(-1, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "portId")
	assert.Contains(t, err.Error(), "number")
}

func TestRestoreLocker_RejectsBrokenInvariants(t *testing.T) {
	id := kernel.NewID()
	boxID := kernel.NewID()
	orderID := kernel.NewID()

	tests := []struct {
		name    string
		status  locker.Status
		box     *kernel.ID
		order   *kernel.ID
		reason  string
		wantErr bool
	}{
		{name: "empty", status: locker.Empty},
		{name: "occupied with box", status: locker.Occupied, box: &boxID},
		{name: "reserved with order", status: locker.Reserved, order: &orderID},
		{name: "maintenance with reason", status: locker.Maintenance, reason: "hinge"},
		{name: "occupied without box", status: locker.Occupied, wantErr: true},
		{name: "empty with box", status: locker.Empty, box: &boxID, wantErr: true},
		{name: "reserved without order", status: locker.Reserved, wantErr: true},
		{name: "maintenance without reason", status: locker.Maintenance, reason: "  ", wantErr: true},
		{name: "empty with reason", status: locker.Empty, reason: "stale", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := locker.RestoreLocker(id, 1, 1, tt.status, tt.box, tt.order, tt.reason, nil)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assertInvariants(t, l)
		})
	}
}

func TestLocker_ChangeStatus_MaintenanceScenario(t *testing.T) {
	l := newEmptyLocker(t)

	// blank reason is refused
	err := l.ChangeStatus(locker.Maintenance, "   ", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, locker.Empty, l.Status())

	require.NoError(t, l.ChangeStatus(locker.Maintenance, "lock broken", nil))
	assert.Equal(t, locker.Maintenance, l.Status())
	assert.Equal(t, "lock broken", l.MaintenanceReason())
	require.ErrorIs(t, l.CheckDeletable(), errs.ErrInvalidTransition)

	// reason refresh while in maintenance
	require.NoError(t, l.ChangeStatus(locker.Maintenance, "waiting for part", nil))
	assert.Equal(t, "waiting for part", l.MaintenanceReason())

	require.NoError(t, l.ChangeStatus(locker.Empty, "", nil))
	assert.Equal(t, locker.Empty, l.Status())
	assert.Empty(t, l.MaintenanceReason())
	require.NoError(t, l.CheckDeletable())
	assertInvariants(t, l)
}

func TestLocker_ChangeStatus_Reserve(t *testing.T) {
	l := newEmptyLocker(t)

	err := l.ChangeStatus(locker.Reserved, "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	orderID := kernel.NewID()
	require.NoError(t, l.ChangeStatus(locker.Reserved, "", &orderID))
	assert.Equal(t, locker.Reserved, l.Status())
	assert.True(t, orderID.IsEqual(*l.ReservedOrderID()))
	assertInvariants(t, l)
}

func TestLocker_ChangeStatus_InUseIsRejected(t *testing.T) {
	l := newEmptyLocker(t)
	orderID := kernel.NewID()
	require.NoError(t, l.ChangeStatus(locker.Reserved, "", &orderID))

	for _, target := range []locker.Status{locker.Empty, locker.Maintenance, locker.Reserved, locker.Occupied} {
		err := l.ChangeStatus(target, "reason", &orderID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition, target.String())
		assert.Contains(t, err.Error(), "locker in use")
	}
	assert.Equal(t, locker.Reserved, l.Status())
}

func TestLocker_ChangeStatus_OccupiedNeedsBoxAssignment(t *testing.T) {
	l := newEmptyLocker(t)

	err := l.ChangeStatus(locker.Occupied, "", nil)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, locker.Empty, l.Status())
}

func TestLocker_ChangeStatus_MaintenanceCannotBeReserved(t *testing.T) {
	l := newEmptyLocker(t)
	require.NoError(t, l.ChangeStatus(locker.Maintenance, "paint", nil))
	orderID := kernel.NewID()

	err := l.ChangeStatus(locker.Reserved, "", &orderID)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, locker.Maintenance, l.Status())
	assert.Nil(t, l.ReservedOrderID())
}

func TestLocker_ChangeStatus_UnknownTarget(t *testing.T) {
	l := newEmptyLocker(t)
	require.ErrorIs(t, l.ChangeStatus(locker.Unknown, "", nil), errs.ErrValueIsInvalid)
}

func TestLocker_AssignBoxAndRelease(t *testing.T) {
	l := newEmptyLocker(t)
	orderID := kernel.NewID()
	boxID := kernel.NewID()
	require.NoError(t, l.ChangeStatus(locker.Reserved, "", &orderID))

	err := l.AssignBox(boxID, kernel.NewID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, locker.Reserved, l.Status())

	require.NoError(t, l.AssignBox(boxID, orderID))
	assert.Equal(t, locker.Occupied, l.Status())
	assert.True(t, boxID.IsEqual(*l.BoxID()))
	assertInvariants(t, l)
	require.ErrorIs(t, l.CheckDeletable(), errs.ErrInvalidTransition)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, l.Release(at))
	assert.Equal(t, locker.Empty, l.Status())
	assert.Equal(t, at, *l.LastUsed())
	assertInvariants(t, l)
}

func TestLocker_AssignBox_RequiresReservation(t *testing.T) {
	l := newEmptyLocker(t)

	err := l.AssignBox(kernel.NewID(), kernel.NewID())

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, l.BoxID())
}

func TestLocker_Release_RequiresOccupied(t *testing.T) {
	l := newEmptyLocker(t)
	require.ErrorIs(t, l.Release(time.Now()), errs.ErrInvalidTransition)
	assert.Nil(t, l.LastUsed())
}
