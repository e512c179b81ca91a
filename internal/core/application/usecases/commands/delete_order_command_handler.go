package commands

import (
	"context"

	"galapagos/internal/core/ports"
)

type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
}

func NewDeleteOrderCommandHandler(orders ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle reports whether a document was removed.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.orders.Delete(ctx, cmd.OrderID())
}
