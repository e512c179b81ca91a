package commands

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrDeleteSeaplaneCommandIsNotConstructed = errors.New(
	"DeleteSeaplaneCommand must be created via NewDeleteSeaplaneCommand constructor",
)

type DeleteSeaplaneCommand struct {
	seaplaneID string

	guard guard.ConstructorGuard
}

func NewDeleteSeaplaneCommand(seaplaneID string) (DeleteSeaplaneCommand, error) {
	id, err := requireText("seaplaneId", seaplaneID)
	if err != nil {
		return DeleteSeaplaneCommand{}, err
	}

	return DeleteSeaplaneCommand{
		seaplaneID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteSeaplaneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSeaplaneCommandIsNotConstructed)
}

func (c DeleteSeaplaneCommand) SeaplaneID() string {
	return c.seaplaneID
}
