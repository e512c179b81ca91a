package commands

import (
	"context"

	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
)

// CreateSeaplaneCommandHandler creates the seaplane node together with its
// STATIONED_AT relationship in a single topology write.
type CreateSeaplaneCommandHandler struct {
	seaplanes ports.SeaplaneRepository
	ports     ports.PortRepository
	locator   *fleet.Locator
}

func NewCreateSeaplaneCommandHandler(
	seaplanes ports.SeaplaneRepository,
	portRepo ports.PortRepository,
	locator *fleet.Locator,
) CreateSeaplaneCommandHandler {
	return CreateSeaplaneCommandHandler{
		seaplanes: seaplanes,
		ports:     portRepo,
		locator:   locator,
	}
}

// Handle returns the new seaplane with its resolved location.
func (h CreateSeaplaneCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSeaplaneCommand,
) (fleet.LocatedSeaplane, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	s, err := seaplane.NewSeaplane(
		cmd.ID(),
		cmd.Model(),
		cmd.BoxCapacity(),
		cmd.FuelConsumptionKm(),
		cmd.CruiseSpeedKmh(),
		cmd.Status(),
	)
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	station, err := h.station(ctx, cmd.PortID())
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	if err = h.seaplanes.Add(ctx, s, station.ID()); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	return h.locator.LocateOne(ctx, s.ID())
}

func (h CreateSeaplaneCommandHandler) station(ctx context.Context, portID *int) (*topology.Port, error) {
	if portID == nil {
		return h.ports.Warehouse(ctx)
	}
	return h.ports.Get(ctx, *portID)
}
