package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/pkg/guard"
)

var ErrUpdateLockerStatusCommandIsNotConstructed = errors.New(
	"UpdateLockerStatusCommand must be created via NewUpdateLockerStatusCommand constructor",
)

// UpdateLockerStatusCommand requests an operator status change on a locker.
// The maintenance reason and reserved order are checked against the target
// status by the locker itself.
type UpdateLockerStatusCommand struct {
	lockerID          kernel.ID
	status            locker.Status
	maintenanceReason string
	reservedOrderID   *kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateLockerStatusCommand(
	lockerID string,
	status string,
	maintenanceReason string,
	reservedOrderID *string,
) (UpdateLockerStatusCommand, error) {
	cmd := UpdateLockerStatusCommand{
		maintenanceReason: maintenanceReason,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLockerID(lockerID),
		cmd.setStatus(status),
		cmd.setReservedOrderID(reservedOrderID),
	); err != nil {
		return UpdateLockerStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateLockerStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLockerStatusCommandIsNotConstructed)
}

func (c UpdateLockerStatusCommand) LockerID() kernel.ID {
	return c.lockerID
}

func (c UpdateLockerStatusCommand) Status() locker.Status {
	return c.status
}

func (c UpdateLockerStatusCommand) MaintenanceReason() string {
	return c.maintenanceReason
}

func (c UpdateLockerStatusCommand) ReservedOrderID() *kernel.ID {
	return c.reservedOrderID
}

func (c *UpdateLockerStatusCommand) setLockerID(id string) error {
	parsed, err := kernel.ParseID("lockerId", id)
	if err != nil {
		return err
	}

	c.lockerID = parsed
	return nil
}

func (c *UpdateLockerStatusCommand) setStatus(status string) error {
	parsed, err := locker.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *UpdateLockerStatusCommand) setReservedOrderID(id *string) error {
	parsed, err := kernel.ParseOptionalID("reservedOrderId", id)
	if err != nil {
		return err
	}

	c.reservedOrderID = parsed
	return nil
}
