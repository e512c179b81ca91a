package commands_test

import (
	"testing"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockerLifecycle_MaintenanceRoundTrip(t *testing.T) {
	ctx := t.Context()
	portRepo := newMemPorts(newPort(t, 1, "P1", -0.7433, -90.3133, 0, false))
	lockers := newMemLockers()
	coordinator, _ := newCoordinator(t)

	add := commands.NewAddLockerCommandHandler(portRepo, lockers, coordinator)
	update := commands.NewUpdateLockerStatusCommandHandler(lockers, new(portsmock.OrderRepository))
	remove := commands.NewDeleteLockerCommandHandler(portRepo, lockers, coordinator)

	addCmd, _ := commands.NewAddLockerCommand(1)
	created, err := add.Handle(ctx, addCmd)
	require.NoError(t, err)
	assert.Equal(t, locker.Empty, created.Status())
	assert.Equal(t, int64(1), portRepo.count(1))

	id := created.ID().String()

	blankCmd, _ := commands.NewUpdateLockerStatusCommand(id, "MAINTENANCE", "", nil)
	_, err = update.Handle(ctx, blankCmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	maintenanceCmd, _ := commands.NewUpdateLockerStatusCommand(id, "MAINTENANCE", "lock broken", nil)
	inMaintenance, err := update.Handle(ctx, maintenanceCmd)
	require.NoError(t, err)
	assert.Equal(t, "lock broken", inMaintenance.MaintenanceReason())

	deleteCmd, _ := commands.NewDeleteLockerCommand(id)
	_, err = remove.Handle(ctx, deleteCmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, int64(1), portRepo.count(1))

	emptyCmd, _ := commands.NewUpdateLockerStatusCommand(id, "EMPTY", "", nil)
	emptied, err := update.Handle(ctx, emptyCmd)
	require.NoError(t, err)
	assert.Equal(t, locker.Empty, emptied.Status())
	assert.Empty(t, emptied.MaintenanceReason())

	removed, err := remove.Handle(ctx, deleteCmd)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(0), portRepo.count(1))
}

func TestLockerLifecycle_NumbersAreAppendOnly(t *testing.T) {
	ctx := t.Context()
	portRepo := newMemPorts(newPort(t, 1, "P1", -0.7433, -90.3133, 0, false))
	lockers := newMemLockers()
	coordinator, _ := newCoordinator(t)

	add := commands.NewAddLockerCommandHandler(portRepo, lockers, coordinator)
	remove := commands.NewDeleteLockerCommandHandler(portRepo, lockers, coordinator)
	cmd, _ := commands.NewAddLockerCommand(1)

	first, err := add.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := add.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, []int{first.Number(), second.Number()})

	deleteCmd, _ := commands.NewDeleteLockerCommand(first.ID().String())
	_, err = remove.Handle(ctx, deleteCmd)
	require.NoError(t, err)

	third, err := add.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Number())
	assert.Equal(t, int64(2), portRepo.count(1))
}
