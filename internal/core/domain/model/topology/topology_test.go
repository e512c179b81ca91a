package topology_test

import (
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsland(t *testing.T) {
	coords, _ := kernel.NewCoordinates(-0.83, -89.43)

	island, err := topology.NewIsland(1, "San Cristóbal", coords, 558)
	require.NoError(t, err)
	require.NoError(t, island.Validate())
	assert.Equal(t, 1, island.ID())
	assert.Equal(t, "San Cristóbal", island.Name())
	assert.InDelta(t, 558, island.AreaKm2(), 1e-9)

	_, err = topology.NewIsland(2, " ", coords, -1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = topology.NewIsland(3, "Isabela", kernel.Coordinates{}, 4588)
	require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}

func TestNewPort(t *testing.T) {
	coords, _ := kernel.NewCoordinates(-0.9017, -89.6103)

	port, err := topology.NewPort(1, "Puerto Baquerizo Moreno", coords, nil, 3, true)
	require.NoError(t, err)
	require.NoError(t, port.Validate())
	assert.True(t, port.IsWarehouse())
	assert.Nil(t, port.Island())
	assert.Equal(t, int64(3), port.LockerCount())

	_, err = topology.NewPort(2, "", coords, nil, 0, false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPort_WithJoinedLockers(t *testing.T) {
	coords, _ := kernel.NewCoordinates(-0.74, -90.31)
	port, err := topology.NewPort(4, "Puerto Ayora", coords, nil, 7, false)
	require.NoError(t, err)

	joined := port.WithJoinedLockers(2)

	assert.Equal(t, int64(2), joined.LockerCount())
	assert.Equal(t, int64(7), port.LockerCount(), "source port is not mutated")
	assert.Equal(t, port.Name(), joined.Name())
}

func TestPort_ZeroValueIsInvalid(t *testing.T) {
	var port *topology.Port
	require.ErrorIs(t, port.Validate(), topology.ErrPortIsNotConstructed)
}
