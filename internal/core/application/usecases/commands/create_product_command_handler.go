package commands

import (
	"context"

	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/ports"
)

type CreateProductCommandHandler struct {
	products ports.ProductRepository
}

func NewCreateProductCommandHandler(products ports.ProductRepository) CreateProductCommandHandler {
	return CreateProductCommandHandler{products: products}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.StockAvailable(), cmd.WeightKg(), cmd.UnitPrice())
	if err != nil {
		return nil, err
	}

	if err = h.products.Add(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
