package commands

import (
	"context"
	"errors"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

var ErrBoxClientMismatch = errors.New("box client differs from the order client")

// CreateBoxCommandHandler creates boxes. A box keeps the order/client pair it
// is created with.
type CreateBoxCommandHandler struct {
	boxes  ports.BoxRepository
	orders ports.OrderRepository
}

func NewCreateBoxCommandHandler(boxes ports.BoxRepository, orders ports.OrderRepository) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		boxes:  boxes,
		orders: orders,
	}
}

func (h CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) (*box.Box, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	clientID := o.ClientID()
	if requested := cmd.ClientID(); requested != nil {
		if !requested.IsEqual(clientID) {
			return nil, errs.NewValueIsInvalidErrorWithCause("clientId", ErrBoxClientMismatch)
		}
	}

	b, err := box.NewBox(o.ID(), clientID, cmd.Number(), cmd.Status(), cmd.Content())
	if err != nil {
		return nil, err
	}

	if err = h.boxes.Add(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
