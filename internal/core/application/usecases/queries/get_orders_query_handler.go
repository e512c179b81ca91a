package queries

import (
	"context"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
)

type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns orders newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Find(ctx, ports.OrderFilter{
		ID:       query.ID(),
		ClientID: query.ClientID(),
		Status:   query.Status(),
	})
}

type GetBoxesQueryHandler struct {
	boxes ports.BoxRepository
}

func NewGetBoxesQueryHandler(boxes ports.BoxRepository) GetBoxesQueryHandler {
	return GetBoxesQueryHandler{boxes: boxes}
}

func (h GetBoxesQueryHandler) Handle(ctx context.Context, query GetBoxesQuery) ([]*box.Box, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.boxes.Find(ctx, ports.BoxFilter{
		ID:       query.ID(),
		OrderID:  query.OrderID(),
		ClientID: query.ClientID(),
		Status:   query.Status(),
	})
}
