package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

type DeleteClientCommand struct {
	clientID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID string) (DeleteClientCommand, error) {
	id, err := kernel.ParseID("clientId", clientID)
	if err != nil {
		return DeleteClientCommand{}, err
	}

	return DeleteClientCommand{
		clientID: id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() kernel.ID {
	return c.clientID
}
