package queries

import (
	"context"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentJoins bounds the locker reads issued for one port listing.
const maxConcurrentJoins = 8

// PortView is a port as returned by GetPortsQueryHandler. Lockers is nil
// unless they were requested.
type PortView struct {
	Port    *topology.Port
	Lockers []*locker.Locker
}

// GetPortsQueryHandler reads ports from the topology store and, on request,
// joins their lockers from the business store.
type GetPortsQueryHandler struct {
	ports   ports.PortRepository
	lockers ports.LockerRepository
}

func NewGetPortsQueryHandler(portRepo ports.PortRepository, lockers ports.LockerRepository) GetPortsQueryHandler {
	return GetPortsQueryHandler{ports: portRepo, lockers: lockers}
}

func (h GetPortsQueryHandler) Handle(ctx context.Context, query GetPortsQuery) ([]PortView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.ports.Find(ctx, ports.PortFilter{
		ID:         query.ID(),
		Name:       query.Name(),
		IslandName: query.IslandName(),
	})
	if err != nil {
		return nil, err
	}

	views := make([]PortView, len(found))
	for i, port := range found {
		views[i] = PortView{Port: port}
	}
	if !query.WithLockers() {
		return views, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentJoins)
	for i := range views {
		g.Go(func() error {
			portID := views[i].Port.ID()
			joined, err := h.lockers.Find(gctx, ports.LockerFilter{PortID: &portID})
			if err != nil {
				return err
			}
			views[i].Lockers = joined
			views[i].Port = views[i].Port.WithJoinedLockers(len(joined))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}

type GetIslandsQueryHandler struct {
	islands ports.IslandRepository
}

func NewGetIslandsQueryHandler(islands ports.IslandRepository) GetIslandsQueryHandler {
	return GetIslandsQueryHandler{islands: islands}
}

func (h GetIslandsQueryHandler) Handle(ctx context.Context, query GetIslandsQuery) ([]*topology.Island, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.islands.Find(ctx, query.Name())
}
