package commands

import (
	"context"

	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves orders forward. A regression is
// rejected before anything is written, and the store rejects it again if the
// order moved on after it was read.
type UpdateOrderStatusCommandHandler struct {
	orders ports.OrderRepository
}

func NewUpdateOrderStatusCommandHandler(orders ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orders: orders}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AdvanceStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.orders.UpdateStatus(ctx, o.ID(), o.Status()); err != nil {
		return nil, err
	}

	return o, nil
}
