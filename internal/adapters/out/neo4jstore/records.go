package neo4jstore

import (
	"fmt"
	"slices"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/topology"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// WarehouseLabel marks the single port boxes ship from.
const WarehouseLabel = "Warehouse"

// OptionalNode returns the node bound to key, or false when the key holds
// null as produced by OPTIONAL MATCH.
func OptionalNode(record *neo4j.Record, key string) (neo4j.Node, bool, error) {
	node, isNil, err := neo4j.GetRecordValue[neo4j.Node](record, key)
	if err != nil {
		return neo4j.Node{}, false, err
	}
	return node, !isNil, nil
}

// IslandFromNode maps an :Island node.
func IslandFromNode(node neo4j.Node) (*topology.Island, error) {
	// Islands seeded by name only have no numeric id.
	id, _ := node.Props["id"].(int64)
	name, err := neo4j.GetProperty[string](node, "name")
	if err != nil {
		return nil, err
	}
	coords, err := coordinates(node)
	if err != nil {
		return nil, err
	}
	area, err := Number(node, "area_km2")
	if err != nil {
		return nil, err
	}
	return topology.NewIsland(int(id), name, coords, area)
}

// PortFromRecord maps the port bound to portKey and, when not null, its
// island bound to islandKey. It returns nil when the port itself is null.
func PortFromRecord(record *neo4j.Record, portKey, islandKey string) (*topology.Port, error) {
	node, ok, err := OptionalNode(record, portKey)
	if err != nil || !ok {
		return nil, err
	}

	var island *topology.Island
	if islandNode, ok, err := OptionalNode(record, islandKey); err != nil {
		return nil, err
	} else if ok {
		if island, err = IslandFromNode(islandNode); err != nil {
			return nil, err
		}
	}

	id, err := neo4j.GetProperty[int64](node, "id")
	if err != nil {
		return nil, err
	}
	name, err := neo4j.GetProperty[string](node, "name")
	if err != nil {
		return nil, err
	}
	coords, err := coordinates(node)
	if err != nil {
		return nil, err
	}
	// Ports seeded before lockers existed carry no counter.
	lockerCount, _ := node.Props["nbLockers"].(int64)

	return topology.NewPort(int(id), name, coords, island, lockerCount, slices.Contains(node.Labels, WarehouseLabel))
}

// Number reads a numeric property stored either as an integer or a float.
func Number(node neo4j.Node, key string) (float64, error) {
	switch v := node.Props[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("property %q of node %s is %T, not a number", key, node.ElementId, v)
	}
}

func coordinates(node neo4j.Node) (kernel.Coordinates, error) {
	lat, err := Number(node, "lat")
	if err != nil {
		return kernel.Coordinates{}, err
	}
	lon, err := Number(node, "lon")
	if err != nil {
		return kernel.Coordinates{}, err
	}
	return kernel.NewCoordinates(lat, lon)
}

// Nullable turns an optional filter into a query parameter, nil binding
// Cypher null.
func Nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
