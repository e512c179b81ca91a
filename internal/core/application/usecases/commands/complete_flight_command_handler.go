package commands

import (
	"context"
	"errors"

	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

var errFlightHasNoArrival = errors.New("seaplane is IN_FLIGHT without a FLYING_TO port")

// CompleteFlightCommandHandler lands an IN_FLIGHT seaplane AT_PORT at its
// arrival port.
type CompleteFlightCommandHandler struct {
	seaplanes ports.SeaplaneRepository
	locator   *fleet.Locator
}

func NewCompleteFlightCommandHandler(
	seaplanes ports.SeaplaneRepository,
	locator *fleet.Locator,
) CompleteFlightCommandHandler {
	return CompleteFlightCommandHandler{
		seaplanes: seaplanes,
		locator:   locator,
	}
}

func (h CompleteFlightCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteFlightCommand,
) (fleet.LocatedSeaplane, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	id := cmd.SeaplaneID()
	positions, err := h.seaplanes.Positions(ctx, &id)
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}
	if len(positions) == 0 {
		return fleet.LocatedSeaplane{}, errs.NewObjectNotFoundError("seaplaneId", id)
	}

	s, arrival := positions[0].Seaplane, positions[0].Position.FlyingTo
	if err = s.Land(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}
	if arrival == nil {
		return fleet.LocatedSeaplane{}, errs.NewConflictErrorWithCause("seaplaneId", id, errFlightHasNoArrival)
	}

	if err = h.seaplanes.Land(ctx, id, arrival.ID(), s.Status()); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	return h.locator.LocateOne(ctx, id)
}
