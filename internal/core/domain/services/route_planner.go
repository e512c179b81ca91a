package services

import (
	"errors"
	"fmt"
	"time"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/pkg/errs"
)

// ErrRouteRevisitsPort is returned when two consecutive stops are the same port.
var ErrRouteRevisitsPort = errors.New("route flies from a port to itself")

// RoutePlanner turns an ordered list of ports into a delivery plan for one
// seaplane.
//
// Business rules:
//   - A route has at least a departure and a destination
//   - Consecutive stops are distinct ports
//   - The boxes carried must fit the seaplane's capacity
//   - Distance is the sum of the great-circle legs
//   - Fuel is distance times the seaplane's consumption per kilometre
//
// Example usage:
//
//	planner := services.NewRoutePlanner()
//	plan, err := planner.Plan(s, []*topology.Port{warehouse, ayora}, boxIDs, nil)
//	if err != nil {
//	    return err
//	}
//	d, err := delivery.NewDelivery(orderID, s.ID(), plan)
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan computes the delivery plan.
//
// Parameters:
//   - s: the seaplane flying the route (must be valid)
//   - stops: ports in flight order, departure first
//   - boxes: boxes carried
//   - scheduledFor: optional planned departure
//
// Returns:
//   - delivery.Plan: route names, distance and fuel estimate
//   - error: validation errors for a short route, repeated stops or an overload
func (p RoutePlanner) Plan(
	s *seaplane.Seaplane,
	stops []*topology.Port,
	boxes []kernel.ID,
	scheduledFor *time.Time,
) (delivery.Plan, error) {
	if err := s.Validate(); err != nil {
		return delivery.Plan{}, err
	}

	if len(stops) < delivery.MinRouteLength {
		return delivery.Plan{}, errs.NewValueIsInvalidErrorWithCause("route",
			fmt.Errorf("a route needs at least %d ports, got %d", delivery.MinRouteLength, len(stops)))
	}

	if !s.CanCarry(len(boxes)) {
		return delivery.Plan{}, errs.NewValueIsOutOfRangeError("boxes", len(boxes), 0, s.BoxCapacity())
	}

	distance, err := p.distanceKm(stops)
	if err != nil {
		return delivery.Plan{}, err
	}

	route := make([]string, 0, len(stops))
	for _, stop := range stops {
		route = append(route, stop.Name())
	}

	return delivery.Plan{
		Route:          route,
		DistanceKm:     distance,
		EstimatedFuelL: s.EstimateFuel(distance),
		Boxes:          boxes,
		ScheduledFor:   scheduledFor,
	}, nil
}

// FlightTime returns how long s needs to fly distanceKm at cruise speed.
func (p RoutePlanner) FlightTime(s *seaplane.Seaplane, distanceKm float64) time.Duration {
	hours := distanceKm / s.CruiseSpeedKmh()
	return time.Duration(hours * float64(time.Hour))
}

func (p RoutePlanner) distanceKm(stops []*topology.Port) (float64, error) {
	var total float64
	for i := 1; i < len(stops); i++ {
		from, to := stops[i-1], stops[i]
		if err := errors.Join(from.Validate(), to.Validate()); err != nil {
			return 0, err
		}
		if from.ID() == to.ID() {
			return 0, errs.NewValueIsInvalidErrorWithCause("route", fmt.Errorf("%w: %s", ErrRouteRevisitsPort, to.Name()))
		}
		total += from.Coordinates().DistanceKm(to.Coordinates())
	}
	return total, nil
}
