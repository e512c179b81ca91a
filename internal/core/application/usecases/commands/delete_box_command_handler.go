package commands

import (
	"context"

	"galapagos/internal/core/ports"
)

type DeleteBoxCommandHandler struct {
	boxes ports.BoxRepository
}

func NewDeleteBoxCommandHandler(boxes ports.BoxRepository) DeleteBoxCommandHandler {
	return DeleteBoxCommandHandler{boxes: boxes}
}

// Handle reports whether a document was removed.
func (h DeleteBoxCommandHandler) Handle(ctx context.Context, cmd DeleteBoxCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.boxes.Delete(ctx, cmd.BoxID())
}
