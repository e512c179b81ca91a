package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrDeleteBoxCommandIsNotConstructed = errors.New(
	"DeleteBoxCommand must be created via NewDeleteBoxCommand constructor",
)

type DeleteBoxCommand struct {
	boxID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteBoxCommand(boxID string) (DeleteBoxCommand, error) {
	id, err := kernel.ParseID("boxId", boxID)
	if err != nil {
		return DeleteBoxCommand{}, err
	}

	return DeleteBoxCommand{
		boxID: id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteBoxCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBoxCommandIsNotConstructed)
}

func (c DeleteBoxCommand) BoxID() kernel.ID {
	return c.boxID
}
