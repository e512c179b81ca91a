package commands

import (
	"context"

	"galapagos/internal/core/ports"
)

type DeleteClientCommandHandler struct {
	clients ports.ClientRepository
}

func NewDeleteClientCommandHandler(clients ports.ClientRepository) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{clients: clients}
}

// Handle reports whether a document was removed.
func (h DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.clients.Delete(ctx, cmd.ClientID())
}
