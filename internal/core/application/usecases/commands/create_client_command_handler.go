package commands

import (
	"context"

	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/ports"
)

type CreateClientCommandHandler struct {
	clients ports.ClientRepository
}

func NewCreateClientCommandHandler(clients ports.ClientRepository) CreateClientCommandHandler {
	return CreateClientCommandHandler{clients: clients}
}

// Handle returns the client with an empty order history.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(cmd.Name(), cmd.Type(), cmd.Specialty(), cmd.Study(), cmd.Email())
	if err != nil {
		return nil, err
	}

	if err = h.clients.Add(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
