package seaplane

import (
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/topology"
)

// enRoutePrefix labels the synthesized location of a flying seaplane.
const enRoutePrefix = "en route to "

// Position holds the relationships read together with a seaplane. Each port
// carries its island when the HAS_PORT edge resolved.
type Position struct {
	Station    *topology.Port
	FlyingFrom *topology.Port
	FlyingTo   *topology.Port
}

// Location is where a seaplane is right now. Island is nil for a location
// synthesized mid-flight.
type Location struct {
	PortName    string
	Island      *topology.Island
	Coordinates kernel.Coordinates
	EnRoute     bool
}

// ResolveLocation derives the current location from freshly read state.
//
// Precedence:
//  1. a station port whose island resolved, even if flight edges also exist;
//  2. for an IN_FLIGHT seaplane with both flight ports, the great-circle
//     midpoint labeled "en route to <arrival>";
//  3. the warehouse port.
//
// It returns nil when none of them is available.
func ResolveLocation(status Status, position Position, warehouse *topology.Port) *Location {
	if station := position.Station; station != nil && station.Island() != nil {
		return portLocation(station)
	}

	if status == InFlight && position.FlyingFrom != nil && position.FlyingTo != nil {
		return &Location{
			PortName:    enRoutePrefix + position.FlyingTo.Name(),
			Coordinates: position.FlyingFrom.Coordinates().Midpoint(position.FlyingTo.Coordinates()),
			EnRoute:     true,
		}
	}

	if warehouse != nil {
		return portLocation(warehouse)
	}

	return nil
}

func portLocation(port *topology.Port) *Location {
	return &Location{
		PortName:    port.Name(),
		Island:      port.Island(),
		Coordinates: port.Coordinates(),
	}
}
