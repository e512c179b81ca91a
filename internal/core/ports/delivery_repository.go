package ports

import (
	"context"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
)

// DeliveryFilter narrows a delivery search. Nil fields do not filter.
type DeliveryFilter struct {
	OrderID    *kernel.ID
	SeaplaneID *string
	Status     *delivery.Status
}

// DeliveryRepository stores delivery documents.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error)
	Update(ctx context.Context, d *delivery.Delivery) error
	Find(ctx context.Context, filter DeliveryFilter) ([]*delivery.Delivery, error)
	CountBySeaplaneAndStatus(ctx context.Context, seaplaneID string, status delivery.Status) (int64, error)
}
