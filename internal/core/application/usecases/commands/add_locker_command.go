package commands

import (
	"errors"

	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrAddLockerCommandIsNotConstructed = errors.New(
	"AddLockerCommand must be created via NewAddLockerCommand constructor",
)

// AddLockerCommand requests a new EMPTY locker at a port. The locker number is
// chosen by the handler.
//
// Example:
//
//	cmd, err := NewAddLockerCommand(3)
//	if err != nil {
//	    return err
//	}
//	l, err := handler.Handle(ctx, cmd)
type AddLockerCommand struct {
	portID int

	guard guard.ConstructorGuard
}

func NewAddLockerCommand(portID int) (AddLockerCommand, error) {
	cmd := AddLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPortID(portID); err != nil {
		return AddLockerCommand{}, err
	}

	return cmd, nil
}

func (c AddLockerCommand) Validate() error {
	return c.guard.Validate(ErrAddLockerCommandIsNotConstructed)
}

func (c AddLockerCommand) PortID() int {
	return c.portID
}

func (c *AddLockerCommand) setPortID(portID int) error {
	if portID < 0 {
		return errs.NewValueIsOutOfRangeError("portId", portID, 0, "∞")
	}

	c.portID = portID
	return nil
}
