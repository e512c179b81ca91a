package commands

import (
	"context"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

// UpdateLockerStatusCommandHandler applies operator status changes.
//
// The locker is read, changed in memory and written back without a lock.
// Two concurrent changes on the same locker both succeed and the last write
// wins.
type UpdateLockerStatusCommandHandler struct {
	lockers ports.LockerRepository
	orders  ports.OrderRepository
}

func NewUpdateLockerStatusCommandHandler(
	lockers ports.LockerRepository,
	orders ports.OrderRepository,
) UpdateLockerStatusCommandHandler {
	return UpdateLockerStatusCommandHandler{
		lockers: lockers,
		orders:  orders,
	}
}

// Handle returns the locker as re-read after the write.
func (h UpdateLockerStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateLockerStatusCommand,
) (*locker.Locker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := h.lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return nil, err
	}

	if err = l.ChangeStatus(cmd.Status(), cmd.MaintenanceReason(), cmd.ReservedOrderID()); err != nil {
		return nil, err
	}

	if cmd.Status() == locker.Reserved {
		if _, err = h.orders.Get(ctx, *cmd.ReservedOrderID()); err != nil {
			return nil, err
		}
	}

	if err = h.lockers.Update(ctx, l); err != nil {
		return nil, err
	}

	return h.lockers.Get(ctx, cmd.LockerID())
}
