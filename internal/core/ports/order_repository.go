package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
)

// OrderFilter narrows an order search. Nil fields do not filter.
type OrderFilter struct {
	ID       *kernel.ID
	ClientID *kernel.ID
	Status   *order.Status
}

// OrderRepository stores order documents.
type OrderRepository interface {
	Add(ctx context.Context, o *order.Order) error
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// UpdateStatus writes status only while the stored status is not past it.
	// A stored status already further along is left untouched and reported
	// as an InvalidTransitionError.
	UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error

	// SetBoxesDelivered writes the delivered box count and nothing else.
	SetBoxesDelivered(ctx context.Context, id kernel.ID, delivered int) error

	Delete(ctx context.Context, id kernel.ID) (bool, error)
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
