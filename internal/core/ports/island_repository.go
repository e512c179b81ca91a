package ports

import (
	"context"

	"galapagos/internal/core/domain/model/topology"
)

// IslandRepository reads the islands of the topology store.
type IslandRepository interface {
	// Find returns the islands whose name contains name, case-insensitively.
	// A nil name returns every island.
	Find(ctx context.Context, name *string) ([]*topology.Island, error)
}
