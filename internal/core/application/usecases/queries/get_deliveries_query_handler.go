package queries

import (
	"context"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/ports"
)

type GetDeliveriesQueryHandler struct {
	deliveries ports.DeliveryRepository
}

func NewGetDeliveriesQueryHandler(deliveries ports.DeliveryRepository) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{deliveries: deliveries}
}

func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.deliveries.Find(ctx, ports.DeliveryFilter{
		OrderID:    query.OrderID(),
		SeaplaneID: query.SeaplaneID(),
		Status:     query.Status(),
	})
}
