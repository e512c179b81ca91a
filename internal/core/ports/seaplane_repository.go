package ports

import (
	"context"

	"galapagos/internal/core/domain/model/seaplane"
)

// SeaplanePosition is a seaplane read together with its relationships.
type SeaplanePosition struct {
	Seaplane *seaplane.Seaplane
	Position seaplane.Position
}

// SeaplaneChanges lists the properties an update writes. Nil fields keep
// the stored value. When Status is set the write applies only while the
// stored status still equals ExpectedStatus.
type SeaplaneChanges struct {
	Model             *string
	BoxCapacity       *int
	FuelConsumptionKm *float64
	CruiseSpeedKmh    *float64
	Status            *seaplane.Status
	ExpectedStatus    seaplane.Status
}

// SeaplaneRepository stores seaplanes and their STATIONED_AT, FLYING_FROM
// and FLYING_TO relationships. Each method is a single write transaction, so
// the node and its relationships change together.
type SeaplaneRepository interface {
	// Add creates the node and its STATIONED_AT relationship to the port.
	// A duplicate registration matches errs.ErrConflict.
	Add(ctx context.Context, s *seaplane.Seaplane, stationPortID int) error

	Get(ctx context.Context, id string) (*seaplane.Seaplane, error)

	// Update writes the supplied properties only. Relationships are
	// untouched. A status that moved away from ExpectedStatus since it was
	// read matches errs.ErrConflict and nothing is written.
	Update(ctx context.Context, id string, changes SeaplaneChanges) error

	// Positions returns seaplanes with whatever relationships resolve.
	// A nil id returns the whole fleet.
	Positions(ctx context.Context, id *string) ([]SeaplanePosition, error)

	// StartFlight sets IN_FLIGHT, removes STATIONED_AT and creates
	// FLYING_FROM and FLYING_TO.
	StartFlight(ctx context.Context, id string, fromPortID, toPortID int) error

	// Land removes the flight relationships, stations the seaplane at the
	// port and writes status.
	Land(ctx context.Context, id string, portID int, status seaplane.Status) error

	// HasFlightRelationships reports whether a FLYING_FROM or FLYING_TO
	// relationship exists.
	HasFlightRelationships(ctx context.Context, id string) (bool, error)

	// Delete detaches and removes the node. It reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
