// Package services provides domain services that work across several
// aggregates of the logistics network.
//
// The package includes:
//   - RoutePlanner: computes the distance and fuel of a delivery route flown
//     by a given seaplane and checks the load fits its hold
//
// Domain services hold no state and perform no I/O; callers read the
// aggregates beforehand and persist the results afterwards.
package services
