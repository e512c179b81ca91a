package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrReleaseLockerCommandIsNotConstructed = errors.New(
	"ReleaseLockerCommand must be created via NewReleaseLockerCommand constructor",
)

// ReleaseLockerCommand empties an OCCUPIED locker once its box was collected.
type ReleaseLockerCommand struct {
	lockerID kernel.ID

	guard guard.ConstructorGuard
}

func NewReleaseLockerCommand(lockerID string) (ReleaseLockerCommand, error) {
	id, err := kernel.ParseID("lockerId", lockerID)
	if err != nil {
		return ReleaseLockerCommand{}, err
	}

	return ReleaseLockerCommand{
		lockerID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseLockerCommand) Validate() error {
	return c.guard.Validate(ErrReleaseLockerCommandIsNotConstructed)
}

func (c ReleaseLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}
