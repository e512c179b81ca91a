package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/product"
)

// ProductFilter narrows a product search. Name is a case-insensitive pattern.
type ProductFilter struct {
	ID   *kernel.ID
	Name *string
}

// ProductRepository stores product documents.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id kernel.ID) (bool, error)
	Find(ctx context.Context, filter ProductFilter) ([]*product.Product, error)

	// DecrementStock subtracts quantity in a single write guarded by
	// stock_available >= quantity, so the stock never goes negative. When
	// the guard fails the error matches errs.ErrConflict.
	DecrementStock(ctx context.Context, id kernel.ID, quantity int) error
}
