package commands

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct {
	name           string
	description    string
	stockAvailable int
	weightKg       float64
	unitPrice      float64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand checks only that a name is present. Stock, weight
// and price bounds are enforced by the product.
func NewCreateProductCommand(
	name, description string,
	stockAvailable int,
	weightKg, unitPrice float64,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description:    description,
		stockAvailable: stockAvailable,
		weightKg:       weightKg,
		unitPrice:      unitPrice,
		guard:          guard.NewConstructorGuard(),
	}

	var err error
	if cmd.name, err = requireText("name", name); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) StockAvailable() int {
	return c.stockAvailable
}

func (c CreateProductCommand) WeightKg() float64 {
	return c.weightKg
}

func (c CreateProductCommand) UnitPrice() float64 {
	return c.unitPrice
}
