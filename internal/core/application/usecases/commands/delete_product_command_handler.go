package commands

import (
	"context"

	"galapagos/internal/core/ports"
)

type DeleteProductCommandHandler struct {
	products ports.ProductRepository
}

func NewDeleteProductCommandHandler(products ports.ProductRepository) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{products: products}
}

// Handle reports whether a document was removed.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.products.Delete(ctx, cmd.ProductID())
}
