package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrDeleteLockerCommandIsNotConstructed = errors.New(
	"DeleteLockerCommand must be created via NewDeleteLockerCommand constructor",
)

type DeleteLockerCommand struct {
	lockerID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteLockerCommand(lockerID string) (DeleteLockerCommand, error) {
	id, err := kernel.ParseID("lockerId", lockerID)
	if err != nil {
		return DeleteLockerCommand{}, err
	}

	return DeleteLockerCommand{
		lockerID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLockerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
}

func (c DeleteLockerCommand) LockerID() kernel.ID {
	return c.lockerID
}
