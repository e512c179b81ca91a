package ports

import (
	"context"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
)

// BoxFilter narrows a box search. Nil fields do not filter.
type BoxFilter struct {
	ID       *kernel.ID
	OrderID  *kernel.ID
	ClientID *kernel.ID
	Status   *box.Status
}

// BoxRepository stores box documents.
type BoxRepository interface {
	Add(ctx context.Context, b *box.Box) error
	Get(ctx context.Context, id kernel.ID) (*box.Box, error)

	// Update writes number, status and content. The order and client
	// references are never rewritten.
	Update(ctx context.Context, b *box.Box) error

	Delete(ctx context.Context, id kernel.ID) (bool, error)
	Find(ctx context.Context, filter BoxFilter) ([]*box.Box, error)
}
