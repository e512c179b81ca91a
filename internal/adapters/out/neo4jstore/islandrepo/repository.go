package islandrepo

import (
	"context"

	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
)

var _ ports.IslandRepository = &Neo4jIslandRepository{}

const findIslands = `
MATCH (i:Island)
WHERE $name IS NULL OR toLower(i.name) CONTAINS toLower($name)
RETURN i
ORDER BY i.name`

type Neo4jIslandRepository struct {
	store *neo4jstore.Store
}

func NewNeo4jIslandRepository(store *neo4jstore.Store) *Neo4jIslandRepository {
	return &Neo4jIslandRepository{store: store}
}

func (r *Neo4jIslandRepository) Find(ctx context.Context, name *string) ([]*topology.Island, error) {
	res, err := r.store.Read(ctx, findIslands, map[string]any{"name": neo4jstore.Nullable(name)})
	if err != nil {
		return nil, err
	}

	islands := make([]*topology.Island, 0, len(res.Records))
	for _, record := range res.Records {
		node, ok, err := neo4jstore.OptionalNode(record, "i")
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		island, err := neo4jstore.IslandFromNode(node)
		if err != nil {
			return nil, err
		}
		islands = append(islands, island)
	}
	return islands, nil
}
