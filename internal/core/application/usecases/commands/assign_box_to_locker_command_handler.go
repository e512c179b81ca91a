package commands

import (
	"context"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

// AssignBoxToLockerCommandHandler moves a RESERVED locker to OCCUPIED. The box
// must belong to the order the locker was reserved for.
type AssignBoxToLockerCommandHandler struct {
	lockers ports.LockerRepository
	boxes   ports.BoxRepository
}

func NewAssignBoxToLockerCommandHandler(
	lockers ports.LockerRepository,
	boxes ports.BoxRepository,
) AssignBoxToLockerCommandHandler {
	return AssignBoxToLockerCommandHandler{
		lockers: lockers,
		boxes:   boxes,
	}
}

func (h AssignBoxToLockerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignBoxToLockerCommand,
) (*locker.Locker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := h.lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return nil, err
	}

	b, err := h.boxes.Get(ctx, cmd.BoxID())
	if err != nil {
		return nil, err
	}

	if err = l.AssignBox(b.ID(), b.OrderID()); err != nil {
		return nil, err
	}

	if err = h.lockers.Update(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}
