package commands

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrCompleteFlightCommandIsNotConstructed = errors.New(
	"CompleteFlightCommand must be created via NewCompleteFlightCommand constructor",
)

type CompleteFlightCommand struct {
	seaplaneID string

	guard guard.ConstructorGuard
}

func NewCompleteFlightCommand(seaplaneID string) (CompleteFlightCommand, error) {
	id, err := requireText("seaplaneId", seaplaneID)
	if err != nil {
		return CompleteFlightCommand{}, err
	}

	return CompleteFlightCommand{
		seaplaneID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteFlightCommand) Validate() error {
	return c.guard.Validate(ErrCompleteFlightCommandIsNotConstructed)
}

func (c CompleteFlightCommand) SeaplaneID() string {
	return c.seaplaneID
}
