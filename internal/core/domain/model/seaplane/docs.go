// Package seaplane models the aircraft of the delivery fleet.
//
// A seaplane lives in the topology store. Its status follows the machine
//
//	AVAILABLE ◄──► AT_PORT ◄──► MAINTENANCE      (ground statuses, freely interchangeable)
//	    │             │  ▲
//	    └──take_off───┘  │
//	          ▼          │
//	      IN_FLIGHT ──land┘
//
// MAINTENANCE cannot take off. While IN_FLIGHT the status is frozen until the
// flight is completed, which lands the seaplane AT_PORT.
//
// The current position is never stored. ResolveLocation derives it from the
// relationships read together with the seaplane: the station first, then the
// midpoint of an ongoing flight, then the warehouse.
package seaplane
