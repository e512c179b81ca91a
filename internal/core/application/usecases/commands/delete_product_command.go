package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct {
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	id, err := kernel.ParseID("productId", productID)
	if err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.ID {
	return c.productID
}
