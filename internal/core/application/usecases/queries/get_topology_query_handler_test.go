package queries_test

import (
	"errors"
	"testing"

	"galapagos/internal/core/application/usecases/queries"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPort(t *testing.T, id int, name string, storedCount int64) *topology.Port {
	t.Helper()
	coords, err := kernel.NewCoordinates(-0.74, -90.31)
	require.NoError(t, err)
	island, err := topology.NewIsland(10, "Santa Cruz", coords, 986)
	require.NoError(t, err)
	port, err := topology.NewPort(id, name, coords, island, storedCount, false)
	require.NoError(t, err)
	return port
}

func newLockers(t *testing.T, portID, n int) []*locker.Locker {
	t.Helper()
	lockers := make([]*locker.Locker, 0, n)
	for i := 1; i <= n; i++ {
		l, err := locker.NewLocker(portID, i)
		require.NoError(t, err)
		lockers = append(lockers, l)
	}
	return lockers
}

func TestGetPortsQueryHandler_Handle_JoinedCountComesFromLockers(t *testing.T) {
	ctx := t.Context()
	ayora := newPort(t, 2, "Puerto Ayora", 7)
	itabaca := newPort(t, 3, "Itabaca", 0)

	portRepo := new(portsmock.PortRepository)
	portRepo.On("Find", ctx, ports.PortFilter{IslandName: ptr("santa")}).
		Return([]*topology.Port{ayora, itabaca}, nil).Once()

	lockers := new(portsmock.LockerRepository)
	lockers.On("Find", mock.Anything, ports.LockerFilter{PortID: ptr(2)}).Return(newLockers(t, 2, 3), nil).Once()
	lockers.On("Find", mock.Anything, ports.LockerFilter{PortID: ptr(3)}).Return([]*locker.Locker{}, nil).Once()

	handler := queries.NewGetPortsQueryHandler(portRepo, lockers)

	views, err := handler.Handle(ctx, queries.NewGetPortsQuery(nil, nil, ptr("  santa "), true))

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(3), views[0].Port.LockerCount())
	assert.Len(t, views[0].Lockers, 3)
	assert.Equal(t, int64(0), views[1].Port.LockerCount())
	assert.Equal(t, int64(7), ayora.LockerCount(), "the stored port is not modified")
	lockers.AssertExpectations(t)
}

func TestGetPortsQueryHandler_Handle_WithoutLockersKeepsStoredCounter(t *testing.T) {
	ctx := t.Context()
	ayora := newPort(t, 2, "Puerto Ayora", 7)

	portRepo := new(portsmock.PortRepository)
	portRepo.On("Find", ctx, ports.PortFilter{ID: ptr(2)}).Return([]*topology.Port{ayora}, nil).Once()
	lockers := new(portsmock.LockerRepository)

	handler := queries.NewGetPortsQueryHandler(portRepo, lockers)

	views, err := handler.Handle(ctx, queries.NewGetPortsQuery(ptr(2), ptr(" "), nil, false))

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(7), views[0].Port.LockerCount())
	assert.Nil(t, views[0].Lockers)
	lockers.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestGetPortsQueryHandler_Handle_LockerReadFailure(t *testing.T) {
	ctx := t.Context()
	portRepo := new(portsmock.PortRepository)
	portRepo.On("Find", ctx, ports.PortFilter{}).Return([]*topology.Port{newPort(t, 2, "Puerto Ayora", 0)}, nil).Once()
	lockers := new(portsmock.LockerRepository)
	lockers.On("Find", mock.Anything, mock.Anything).
		Return(nil, errs.NewStoreUnavailableError("mongodb", errors.New("timeout"))).Once()

	handler := queries.NewGetPortsQueryHandler(portRepo, lockers)

	_, err := handler.Handle(ctx, queries.NewGetPortsQuery(nil, nil, nil, true))

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestGetIslandsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	coords, _ := kernel.NewCoordinates(-0.9, -89.6)
	sanCristobal, _ := topology.NewIsland(1, "San Cristóbal", coords, 558)

	islands := new(portsmock.IslandRepository)
	islands.On("Find", ctx, ptr("cristóbal")).Return([]*topology.Island{sanCristobal}, nil).Once()

	handler := queries.NewGetIslandsQueryHandler(islands)
	found, err := handler.Handle(ctx, queries.NewGetIslandsQuery(ptr("cristóbal")))

	require.NoError(t, err)
	assert.Equal(t, []*topology.Island{sanCristobal}, found)
}
