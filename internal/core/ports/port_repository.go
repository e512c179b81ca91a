package ports

import (
	"context"

	"galapagos/internal/core/domain/model/topology"
)

// PortFilter narrows a port search. Nil fields do not filter.
type PortFilter struct {
	ID   *int
	Name *string
	// IslandName matches islands whose name contains it, case-insensitively.
	IslandName *string
}

// PortRepository reads ports and maintains their denormalized locker counter.
type PortRepository interface {
	// Get returns the port with its island.
	Get(ctx context.Context, id int) (*topology.Port, error)

	// GetByName returns the port with the exact name.
	GetByName(ctx context.Context, name string) (*topology.Port, error)

	// Warehouse returns the designated warehouse port.
	Warehouse(ctx context.Context) (*topology.Port, error)

	Find(ctx context.Context, filter PortFilter) ([]*topology.Port, error)

	// AdjustLockerCount adds delta to the stored counter in a single write.
	// A missing counter is treated as zero.
	AdjustLockerCount(ctx context.Context, id int, delta int) error

	// SetLockerCount overwrites the stored counter.
	SetLockerCount(ctx context.Context, id int, count int64) error
}
