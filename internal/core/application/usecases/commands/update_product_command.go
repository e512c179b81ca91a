package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

type UpdateProductCommand struct {
	productID      kernel.ID
	name           *string
	description    *string
	stockAvailable *int
	weightKg       *float64
	unitPrice      *float64

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID string,
	name, description *string,
	stockAvailable *int,
	weightKg, unitPrice *float64,
) (UpdateProductCommand, error) {
	id, err := kernel.ParseID("productId", productID)
	if err != nil {
		return UpdateProductCommand{}, err
	}

	if name == nil && description == nil && stockAvailable == nil && weightKg == nil && unitPrice == nil {
		return UpdateProductCommand{}, errs.NewValueIsRequiredErrorWithCause("fields", ErrNothingToUpdate)
	}

	return UpdateProductCommand{
		productID:      id,
		name:           name,
		description:    description,
		stockAvailable: stockAvailable,
		weightKg:       weightKg,
		unitPrice:      unitPrice,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.ID {
	return c.productID
}

func (c UpdateProductCommand) Name() *string {
	return c.name
}

func (c UpdateProductCommand) Description() *string {
	return c.description
}

func (c UpdateProductCommand) StockAvailable() *int {
	return c.stockAvailable
}

func (c UpdateProductCommand) WeightKg() *float64 {
	return c.weightKg
}

func (c UpdateProductCommand) UnitPrice() *float64 {
	return c.unitPrice
}
