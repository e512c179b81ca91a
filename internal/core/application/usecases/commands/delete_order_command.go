package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	id, err := kernel.ParseID("orderId", orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
