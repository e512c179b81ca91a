package commands

import (
	"context"

	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/ports"
)

type UpdateProductCommandHandler struct {
	products ports.ProductRepository
}

func NewUpdateProductCommandHandler(products ports.ProductRepository) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{products: products}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.Update(cmd.Name(), cmd.Description(), cmd.StockAvailable(), cmd.WeightKg(), cmd.UnitPrice()); err != nil {
		return nil, err
	}

	if err = h.products.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
