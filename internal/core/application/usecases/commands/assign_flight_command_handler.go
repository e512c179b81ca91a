package commands

import (
	"context"

	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/ports"
)

// AssignFlightCommandHandler starts a flight. The seaplane status is checked
// before the port names are resolved, so a seaplane in maintenance is refused
// even for unknown ports.
type AssignFlightCommandHandler struct {
	seaplanes ports.SeaplaneRepository
	ports     ports.PortRepository
	locator   *fleet.Locator
}

func NewAssignFlightCommandHandler(
	seaplanes ports.SeaplaneRepository,
	portRepo ports.PortRepository,
	locator *fleet.Locator,
) AssignFlightCommandHandler {
	return AssignFlightCommandHandler{
		seaplanes: seaplanes,
		ports:     portRepo,
		locator:   locator,
	}
}

// Handle replaces STATIONED_AT with FLYING_FROM/FLYING_TO and returns the
// seaplane located mid-flight.
func (h AssignFlightCommandHandler) Handle(
	ctx context.Context,
	cmd AssignFlightCommand,
) (fleet.LocatedSeaplane, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	s, err := h.seaplanes.Get(ctx, cmd.SeaplaneID())
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	if err = s.TakeOff(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	departure, err := h.ports.GetByName(ctx, cmd.DeparturePort())
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	arrival, err := h.ports.GetByName(ctx, cmd.ArrivalPort())
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	if err = h.seaplanes.StartFlight(ctx, s.ID(), departure.ID(), arrival.ID()); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	return h.locator.LocateOne(ctx, s.ID())
}
