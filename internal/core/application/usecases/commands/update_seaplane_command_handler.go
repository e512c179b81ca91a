package commands

import (
	"context"

	"galapagos/internal/core/application/fleet"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/ports"
)

// UpdateSeaplaneCommandHandler applies partial updates. The status of an
// IN_FLIGHT seaplane cannot be changed here, and a grounded seaplane cannot
// be put IN_FLIGHT without a flight assignment.
//
// Only the supplied fields are written. A status change is written only if
// the stored status is still the one validated against, so a flight that
// departed after the read is never overwritten.
type UpdateSeaplaneCommandHandler struct {
	seaplanes ports.SeaplaneRepository
	locator   *fleet.Locator
}

func NewUpdateSeaplaneCommandHandler(
	seaplanes ports.SeaplaneRepository,
	locator *fleet.Locator,
) UpdateSeaplaneCommandHandler {
	return UpdateSeaplaneCommandHandler{
		seaplanes: seaplanes,
		locator:   locator,
	}
}

// Handle returns the updated seaplane with its resolved location.
func (h UpdateSeaplaneCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateSeaplaneCommand,
) (fleet.LocatedSeaplane, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	s, err := h.seaplanes.Get(ctx, cmd.ID())
	if err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	expected := s.Status()
	if err = s.Update(
		cmd.Model(),
		cmd.BoxCapacity(),
		cmd.FuelConsumptionKm(),
		cmd.CruiseSpeedKmh(),
		cmd.Status(),
	); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	if err = h.seaplanes.Update(ctx, s.ID(), changesOf(cmd, s, expected)); err != nil {
		return fleet.LocatedSeaplane{}, err
	}

	return h.locator.LocateOne(ctx, s.ID())
}

// changesOf carries the validated value of every field the command supplied.
func changesOf(cmd UpdateSeaplaneCommand, s *seaplane.Seaplane, expected seaplane.Status) ports.SeaplaneChanges {
	changes := ports.SeaplaneChanges{ExpectedStatus: expected}
	if cmd.Model() != nil {
		model := s.Model()
		changes.Model = &model
	}
	if cmd.BoxCapacity() != nil {
		capacity := s.BoxCapacity()
		changes.BoxCapacity = &capacity
	}
	if cmd.FuelConsumptionKm() != nil {
		fuel := s.FuelConsumptionKm()
		changes.FuelConsumptionKm = &fuel
	}
	if cmd.CruiseSpeedKmh() != nil {
		speed := s.CruiseSpeedKmh()
		changes.CruiseSpeedKmh = &speed
	}
	if cmd.Status() != nil {
		status := s.Status()
		changes.Status = &status
	}
	return changes
}
