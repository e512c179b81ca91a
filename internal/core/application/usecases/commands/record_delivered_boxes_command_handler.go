package commands

import (
	"context"

	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
)

// RecordDeliveredBoxesCommandHandler writes the delivered box count.
//
// The upper bound is checked against the order as read by this call only.
// Only boxes_delivered is written, so a status change landing between the
// read and the write is kept. Two concurrent writers of the count both pass
// the check and the last one wins.
type RecordDeliveredBoxesCommandHandler struct {
	orders ports.OrderRepository
}

func NewRecordDeliveredBoxesCommandHandler(orders ports.OrderRepository) RecordDeliveredBoxesCommandHandler {
	return RecordDeliveredBoxesCommandHandler{orders: orders}
}

func (h RecordDeliveredBoxesCommandHandler) Handle(
	ctx context.Context,
	cmd RecordDeliveredBoxesCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.RecordDeliveredBoxes(cmd.BoxesDelivered()); err != nil {
		return nil, err
	}

	if err = h.orders.SetBoxesDelivered(ctx, o.ID(), o.BoxesDelivered()); err != nil {
		return nil, err
	}

	return o, nil
}
