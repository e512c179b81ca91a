package commands

import (
	"context"

	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/ports"
)

type UpdateClientCommandHandler struct {
	clients ports.ClientRepository
}

func NewUpdateClientCommandHandler(clients ports.ClientRepository) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{clients: clients}
}

func (h UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.clients.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Name(), cmd.Type(), cmd.Specialty(), cmd.Study(), cmd.Email()); err != nil {
		return nil, err
	}

	if err = h.clients.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
