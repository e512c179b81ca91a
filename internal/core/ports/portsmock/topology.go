package portsmock

import (
	"context"

	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.IslandRepository   = (*IslandRepository)(nil)
	_ ports.PortRepository     = (*PortRepository)(nil)
	_ ports.SeaplaneRepository = (*SeaplaneRepository)(nil)
)

type IslandRepository struct{ mock.Mock }

func (m *IslandRepository) Find(ctx context.Context, name *string) ([]*topology.Island, error) {
	args := m.Called(ctx, name)
	islands, _ := args.Get(0).([]*topology.Island)
	return islands, args.Error(1)
}

type PortRepository struct{ mock.Mock }

func (m *PortRepository) Get(ctx context.Context, id int) (*topology.Port, error) {
	args := m.Called(ctx, id)
	port, _ := args.Get(0).(*topology.Port)
	return port, args.Error(1)
}

func (m *PortRepository) GetByName(ctx context.Context, name string) (*topology.Port, error) {
	args := m.Called(ctx, name)
	port, _ := args.Get(0).(*topology.Port)
	return port, args.Error(1)
}

func (m *PortRepository) Warehouse(ctx context.Context) (*topology.Port, error) {
	args := m.Called(ctx)
	port, _ := args.Get(0).(*topology.Port)
	return port, args.Error(1)
}

func (m *PortRepository) Find(ctx context.Context, filter ports.PortFilter) ([]*topology.Port, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*topology.Port)
	return found, args.Error(1)
}

func (m *PortRepository) AdjustLockerCount(ctx context.Context, id int, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *PortRepository) SetLockerCount(ctx context.Context, id int, count int64) error {
	return m.Called(ctx, id, count).Error(0)
}

type SeaplaneRepository struct{ mock.Mock }

func (m *SeaplaneRepository) Add(ctx context.Context, s *seaplane.Seaplane, stationPortID int) error {
	return m.Called(ctx, s, stationPortID).Error(0)
}

func (m *SeaplaneRepository) Get(ctx context.Context, id string) (*seaplane.Seaplane, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*seaplane.Seaplane)
	return s, args.Error(1)
}

func (m *SeaplaneRepository) Update(ctx context.Context, id string, changes ports.SeaplaneChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *SeaplaneRepository) Positions(ctx context.Context, id *string) ([]ports.SeaplanePosition, error) {
	args := m.Called(ctx, id)
	positions, _ := args.Get(0).([]ports.SeaplanePosition)
	return positions, args.Error(1)
}

func (m *SeaplaneRepository) StartFlight(ctx context.Context, id string, fromPortID, toPortID int) error {
	return m.Called(ctx, id, fromPortID, toPortID).Error(0)
}

func (m *SeaplaneRepository) Land(ctx context.Context, id string, portID int, status seaplane.Status) error {
	return m.Called(ctx, id, portID, status).Error(0)
}

func (m *SeaplaneRepository) HasFlightRelationships(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *SeaplaneRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
