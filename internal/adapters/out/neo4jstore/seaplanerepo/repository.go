package seaplanerepo

import (
	"context"
	"errors"
	"fmt"

	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var _ ports.SeaplaneRepository = &Neo4jSeaplaneRepository{}

const (
	addSeaplane = `
MATCH (p:Port {id: $portId})
CREATE (s:Seaplane)-[:STATIONED_AT]->(p)
SET s = $props
RETURN s.id AS id`

	getSeaplane = `MATCH (s:Seaplane {id: $id}) RETURN s`

	updateSeaplane = `
MATCH (s:Seaplane {id: $id})
WITH s, ($expected IS NULL OR s.status = $expected) AS applies
FOREACH (_ IN CASE WHEN applies THEN [1] ELSE [] END | SET s += $props)
RETURN applies, s.status AS status`

	seaplanePositions = `
MATCH (s:Seaplane)
WHERE $id IS NULL OR s.id = $id
OPTIONAL MATCH (s)-[:STATIONED_AT]->(station:Port)
OPTIONAL MATCH (stationIsland:Island)-[:HAS_PORT]-(station)
OPTIONAL MATCH (s)-[:FLYING_FROM]->(from:Port)
OPTIONAL MATCH (fromIsland:Island)-[:HAS_PORT]-(from)
OPTIONAL MATCH (s)-[:FLYING_TO]->(to:Port)
OPTIONAL MATCH (toIsland:Island)-[:HAS_PORT]-(to)
RETURN s, station, stationIsland, from, fromIsland, to, toIsland
ORDER BY s.id`

	// Both statements drop every existing position edge before creating the
	// new ones, so a seaplane never holds a station and a flight at once.
	startFlight = `
MATCH (s:Seaplane {id: $id}), (from:Port {id: $fromId}), (to:Port {id: $toId})
OPTIONAL MATCH (s)-[r:STATIONED_AT|FLYING_FROM|FLYING_TO]->()
DELETE r
WITH DISTINCT s, from, to
SET s.status = $status
CREATE (s)-[:FLYING_FROM]->(from), (s)-[:FLYING_TO]->(to)
RETURN s.id AS id`

	land = `
MATCH (s:Seaplane {id: $id}), (p:Port {id: $portId})
OPTIONAL MATCH (s)-[r:STATIONED_AT|FLYING_FROM|FLYING_TO]->()
DELETE r
WITH DISTINCT s, p
SET s.status = $status
CREATE (s)-[:STATIONED_AT]->(p)
RETURN s.id AS id`

	countFlightEdges = `
MATCH (s:Seaplane {id: $id})
OPTIONAL MATCH (s)-[r:FLYING_FROM|FLYING_TO]->()
RETURN count(r) AS flights`

	deleteSeaplane = `
MATCH (s:Seaplane {id: $id})
DETACH DELETE s`
)

type Neo4jSeaplaneRepository struct {
	store *neo4jstore.Store
}

func NewNeo4jSeaplaneRepository(store *neo4jstore.Store) *Neo4jSeaplaneRepository {
	return &Neo4jSeaplaneRepository{store: store}
}

// Add creates the node and its station edge in one statement. A missing
// port creates nothing and is reported as not found.
func (r *Neo4jSeaplaneRepository) Add(ctx context.Context, s *seaplane.Seaplane, stationPortID int) error {
	res, err := r.store.Write(ctx, addSeaplane, map[string]any{
		"portId": int64(stationPortID),
		"props":  properties(s),
	})
	if errors.Is(err, errs.ErrConflict) {
		return errs.NewConflictErrorWithCause("seaplane", s.ID(), err)
	}
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return errs.NewObjectNotFoundError("port", stationPortID)
	}
	return nil
}

func (r *Neo4jSeaplaneRepository) Get(ctx context.Context, id string) (*seaplane.Seaplane, error) {
	res, err := r.store.Read(ctx, getSeaplane, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, errs.NewObjectNotFoundError("seaplane", id)
	}
	node, _, err := neo4jstore.OptionalNode(res.Records[0], "s")
	if err != nil {
		return nil, err
	}
	return fromNode(node)
}

func (r *Neo4jSeaplaneRepository) Update(ctx context.Context, id string, changes ports.SeaplaneChanges) error {
	var expected any
	if changes.Status != nil {
		expected = changes.ExpectedStatus.String()
	}

	res, err := r.store.Write(ctx, updateSeaplane, map[string]any{
		"id":       id,
		"props":    changedProperties(changes),
		"expected": expected,
	})
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return errs.NewObjectNotFoundError("seaplane", id)
	}

	record := res.Records[0]
	applies, _, err := neo4j.GetRecordValue[bool](record, "applies")
	if err != nil {
		return err
	}
	if !applies {
		current, _, _ := neo4j.GetRecordValue[string](record, "status")
		return errs.NewConflictErrorWithCause("seaplane", id,
			fmt.Errorf("status changed from %s to %s since it was read", changes.ExpectedStatus, current))
	}
	return nil
}

func (r *Neo4jSeaplaneRepository) Positions(ctx context.Context, id *string) ([]ports.SeaplanePosition, error) {
	res, err := r.store.Read(ctx, seaplanePositions, map[string]any{"id": neo4jstore.Nullable(id)})
	if err != nil {
		return nil, err
	}

	result := make([]ports.SeaplanePosition, 0, len(res.Records))
	for _, record := range res.Records {
		node, _, err := neo4jstore.OptionalNode(record, "s")
		if err != nil {
			return nil, err
		}
		plane, err := fromNode(node)
		if err != nil {
			return nil, err
		}
		position, err := positionFromRecord(record)
		if err != nil {
			return nil, err
		}
		result = append(result, ports.SeaplanePosition{Seaplane: plane, Position: position})
	}
	return result, nil
}

func (r *Neo4jSeaplaneRepository) StartFlight(ctx context.Context, id string, fromPortID, toPortID int) error {
	res, err := r.store.Write(ctx, startFlight, map[string]any{
		"id":     id,
		"fromId": int64(fromPortID),
		"toId":   int64(toPortID),
		"status": seaplane.InFlight.String(),
	})
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return errs.NewObjectNotFoundError("seaplane", id)
	}
	return nil
}

func (r *Neo4jSeaplaneRepository) Land(ctx context.Context, id string, portID int, status seaplane.Status) error {
	res, err := r.store.Write(ctx, land, map[string]any{
		"id":     id,
		"portId": int64(portID),
		"status": status.String(),
	})
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return errs.NewObjectNotFoundError("seaplane", id)
	}
	return nil
}

func (r *Neo4jSeaplaneRepository) HasFlightRelationships(ctx context.Context, id string) (bool, error) {
	res, err := r.store.Read(ctx, countFlightEdges, map[string]any{"id": id})
	if err != nil {
		return false, err
	}
	if len(res.Records) == 0 {
		return false, errs.NewObjectNotFoundError("seaplane", id)
	}
	flights, _ := res.Records[0].Get("flights")
	count, _ := flights.(int64)
	return count > 0, nil
}

func (r *Neo4jSeaplaneRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.store.Write(ctx, deleteSeaplane, map[string]any{"id": id})
	if err != nil {
		return false, err
	}
	return res.Summary.Counters().NodesDeleted() > 0, nil
}
