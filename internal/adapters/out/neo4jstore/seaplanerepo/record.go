package seaplanerepo

import (
	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/ports"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// properties is the node property map; status is stored in upper case.
func properties(s *seaplane.Seaplane) map[string]any {
	return map[string]any{
		"id":                  s.ID(),
		"model":               s.Model(),
		"box_capacity":        int64(s.BoxCapacity()),
		"fuel_consumption_km": s.FuelConsumptionKm(),
		"cruise_speed_kmh":    s.CruiseSpeedKmh(),
		"status":              s.Status().String(),
	}
}

// changedProperties holds only the supplied changes, keyed as in properties.
func changedProperties(c ports.SeaplaneChanges) map[string]any {
	props := map[string]any{}
	if c.Model != nil {
		props["model"] = *c.Model
	}
	if c.BoxCapacity != nil {
		props["box_capacity"] = int64(*c.BoxCapacity)
	}
	if c.FuelConsumptionKm != nil {
		props["fuel_consumption_km"] = *c.FuelConsumptionKm
	}
	if c.CruiseSpeedKmh != nil {
		props["cruise_speed_kmh"] = *c.CruiseSpeedKmh
	}
	if c.Status != nil {
		props["status"] = c.Status.String()
	}
	return props
}

func fromNode(node neo4j.Node) (*seaplane.Seaplane, error) {
	id, err := neo4j.GetProperty[string](node, "id")
	if err != nil {
		return nil, err
	}
	model, err := neo4j.GetProperty[string](node, "model")
	if err != nil {
		return nil, err
	}
	capacity, err := neo4j.GetProperty[int64](node, "box_capacity")
	if err != nil {
		return nil, err
	}
	fuel, err := neo4jstore.Number(node, "fuel_consumption_km")
	if err != nil {
		return nil, err
	}
	speed, err := neo4jstore.Number(node, "cruise_speed_kmh")
	if err != nil {
		return nil, err
	}
	rawStatus, err := neo4j.GetProperty[string](node, "status")
	if err != nil {
		return nil, err
	}
	status, err := seaplane.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	return seaplane.RestoreSeaplane(id, model, int(capacity), fuel, speed, status)
}

func positionFromRecord(record *neo4j.Record) (seaplane.Position, error) {
	var (
		position seaplane.Position
		err      error
	)
	if position.Station, err = neo4jstore.PortFromRecord(record, "station", "stationIsland"); err != nil {
		return seaplane.Position{}, err
	}
	if position.FlyingFrom, err = neo4jstore.PortFromRecord(record, "from", "fromIsland"); err != nil {
		return seaplane.Position{}, err
	}
	if position.FlyingTo, err = neo4jstore.PortFromRecord(record, "to", "toIsland"); err != nil {
		return seaplane.Position{}, err
	}
	return position, nil
}
