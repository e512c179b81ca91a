package ports

import (
	"context"

	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/kernel"
)

// ClientFilter narrows a client search. Name is a case-insensitive pattern.
type ClientFilter struct {
	ID   *kernel.ID
	Name *string
}

// ClientRepository stores client documents.
type ClientRepository interface {
	Add(ctx context.Context, c *client.Client) error
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)

	// Update writes the profile fields. The order history is left alone.
	Update(ctx context.Context, c *client.Client) error

	Delete(ctx context.Context, id kernel.ID) (bool, error)
	Find(ctx context.Context, filter ClientFilter) ([]*client.Client, error)

	// AppendOrder pushes orderID to the end of the client's history in a
	// single atomic write.
	AppendOrder(ctx context.Context, clientID, orderID kernel.ID) error
}
