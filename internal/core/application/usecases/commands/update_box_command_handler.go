package commands

import (
	"context"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/ports"
)

type UpdateBoxCommandHandler struct {
	boxes ports.BoxRepository
}

func NewUpdateBoxCommandHandler(boxes ports.BoxRepository) UpdateBoxCommandHandler {
	return UpdateBoxCommandHandler{boxes: boxes}
}

// Handle applies the change and returns the box. Status only moves forward.
func (h UpdateBoxCommandHandler) Handle(ctx context.Context, cmd UpdateBoxCommand) (*box.Box, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := h.boxes.Get(ctx, cmd.BoxID())
	if err != nil {
		return nil, err
	}

	if err = b.Update(cmd.Number(), cmd.Status(), cmd.Content()); err != nil {
		return nil, err
	}

	if err = h.boxes.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
