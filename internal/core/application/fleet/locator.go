// Package fleet resolves where seaplanes currently are.
package fleet

import (
	"context"
	"errors"

	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

// LocatedSeaplane is a seaplane with its derived location. Location is nil
// when neither a station, a flight nor a warehouse resolved.
type LocatedSeaplane struct {
	Seaplane *seaplane.Seaplane
	Location *seaplane.Location
}

// Locator reads seaplanes with their relationships and derives their
// location on every call. Nothing is cached.
type Locator struct {
	seaplanes ports.SeaplaneRepository
	ports     ports.PortRepository
}

func NewLocator(seaplanes ports.SeaplaneRepository, portRepo ports.PortRepository) *Locator {
	return &Locator{seaplanes: seaplanes, ports: portRepo}
}

// Locate returns the whole fleet, or the single seaplane when id is set.
func (l *Locator) Locate(ctx context.Context, id *string) ([]LocatedSeaplane, error) {
	positions, err := l.seaplanes.Positions(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return []LocatedSeaplane{}, nil
	}

	warehouse, err := l.warehouse(ctx)
	if err != nil {
		return nil, err
	}

	located := make([]LocatedSeaplane, 0, len(positions))
	for _, p := range positions {
		located = append(located, LocatedSeaplane{
			Seaplane: p.Seaplane,
			Location: seaplane.ResolveLocation(p.Seaplane.Status(), p.Position, warehouse),
		})
	}
	return located, nil
}

// LocateOne returns a single seaplane or a not found error.
func (l *Locator) LocateOne(ctx context.Context, id string) (LocatedSeaplane, error) {
	located, err := l.Locate(ctx, &id)
	if err != nil {
		return LocatedSeaplane{}, err
	}
	if len(located) == 0 {
		return LocatedSeaplane{}, errs.NewObjectNotFoundError("seaplaneId", id)
	}
	return located[0], nil
}

// A missing warehouse only disables the last fallback.
func (l *Locator) warehouse(ctx context.Context) (*topology.Port, error) {
	warehouse, err := l.ports.Warehouse(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // no warehouse configured
	}
	return warehouse, err
}
