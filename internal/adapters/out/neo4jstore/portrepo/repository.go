package portrepo

import (
	"context"

	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var _ ports.PortRepository = &Neo4jPortRepository{}

// withIsland completes a MATCH binding p with its island, if any.
const withIsland = `
OPTIONAL MATCH (i:Island)-[:HAS_PORT]-(p)
RETURN p, i`

const (
	getPort       = `MATCH (p:Port {id: $id})` + withIsland
	getPortByName = `MATCH (p:Port {name: $name})` + withIsland
	getWarehouse  = `MATCH (p:Port:Warehouse) WITH p ORDER BY p.id LIMIT 1` + withIsland

	findPorts = `
MATCH (p:Port)
OPTIONAL MATCH (i:Island)-[:HAS_PORT]-(p)
WITH p, i
WHERE ($id IS NULL OR p.id = $id)
  AND ($name IS NULL OR p.name = $name)
  AND ($islandName IS NULL OR toLower(i.name) CONTAINS toLower($islandName))
RETURN p, i
ORDER BY p.id`

	adjustLockerCount = `
MATCH (p:Port {id: $id})
SET p.nbLockers = coalesce(p.nbLockers, 0) + $delta
RETURN p.nbLockers AS count`

	setLockerCount = `
MATCH (p:Port {id: $id})
SET p.nbLockers = $count
RETURN p.nbLockers AS count`
)

type Neo4jPortRepository struct {
	store *neo4jstore.Store
}

func NewNeo4jPortRepository(store *neo4jstore.Store) *Neo4jPortRepository {
	return &Neo4jPortRepository{store: store}
}

func (r *Neo4jPortRepository) Get(ctx context.Context, id int) (*topology.Port, error) {
	return r.one(ctx, getPort, map[string]any{"id": int64(id)}, "port", id)
}

func (r *Neo4jPortRepository) GetByName(ctx context.Context, name string) (*topology.Port, error) {
	return r.one(ctx, getPortByName, map[string]any{"name": name}, "port", name)
}

func (r *Neo4jPortRepository) Warehouse(ctx context.Context) (*topology.Port, error) {
	return r.one(ctx, getWarehouse, nil, "warehouse", neo4jstore.WarehouseLabel)
}

func (r *Neo4jPortRepository) Find(ctx context.Context, filter ports.PortFilter) ([]*topology.Port, error) {
	params := map[string]any{
		"id":         nil,
		"name":       neo4jstore.Nullable(filter.Name),
		"islandName": neo4jstore.Nullable(filter.IslandName),
	}
	if filter.ID != nil {
		params["id"] = int64(*filter.ID)
	}

	res, err := r.store.Read(ctx, findPorts, params)
	if err != nil {
		return nil, err
	}
	return portsFromRecords(res.Records)
}

func (r *Neo4jPortRepository) AdjustLockerCount(ctx context.Context, id int, delta int) error {
	return r.writeCount(ctx, adjustLockerCount, map[string]any{"id": int64(id), "delta": int64(delta)}, id)
}

func (r *Neo4jPortRepository) SetLockerCount(ctx context.Context, id int, count int64) error {
	return r.writeCount(ctx, setLockerCount, map[string]any{"id": int64(id), "count": count}, id)
}

func (r *Neo4jPortRepository) writeCount(ctx context.Context, cypher string, params map[string]any, id int) error {
	res, err := r.store.Write(ctx, cypher, params)
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return errs.NewObjectNotFoundError("port", id)
	}
	return nil
}

func (r *Neo4jPortRepository) one(
	ctx context.Context, cypher string, params map[string]any, param string, key any,
) (*topology.Port, error) {
	res, err := r.store.Read(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	found, err := portsFromRecords(res.Records)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errs.NewObjectNotFoundError(param, key)
	}
	return found[0], nil
}

func portsFromRecords(records []*neo4j.Record) ([]*topology.Port, error) {
	result := make([]*topology.Port, 0, len(records))
	for _, record := range records {
		port, err := neo4jstore.PortFromRecord(record, "p", "i")
		if err != nil {
			return nil, err
		}
		if port != nil {
			result = append(result, port)
		}
	}
	return result, nil
}
