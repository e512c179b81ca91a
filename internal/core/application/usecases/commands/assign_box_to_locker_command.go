package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrAssignBoxToLockerCommandIsNotConstructed = errors.New(
	"AssignBoxToLockerCommand must be created via NewAssignBoxToLockerCommand constructor",
)

// AssignBoxToLockerCommand stores a box in the locker reserved for its order.
type AssignBoxToLockerCommand struct {
	lockerID kernel.ID
	boxID    kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignBoxToLockerCommand(lockerID, boxID string) (AssignBoxToLockerCommand, error) {
	cmd := AssignBoxToLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	var lockerErr, boxErr error
	cmd.lockerID, lockerErr = kernel.ParseID("lockerId", lockerID)
	cmd.boxID, boxErr = kernel.ParseID("boxId", boxID)
	if err := errors.Join(lockerErr, boxErr); err != nil {
		return AssignBoxToLockerCommand{}, err
	}

	return cmd, nil
}

func (c AssignBoxToLockerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBoxToLockerCommandIsNotConstructed)
}

func (c AssignBoxToLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}

func (c AssignBoxToLockerCommand) BoxID() kernel.ID {
	return c.boxID
}
