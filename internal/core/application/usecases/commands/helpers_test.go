package commands_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/logs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T) (*consistency.Coordinator, *consistency.Metrics) {
	t.Helper()
	metrics := consistency.NewMetrics(prometheus.NewRegistry())
	return consistency.NewCoordinator(logs.Discard(), metrics), metrics
}

func newPort(t *testing.T, id int, name string, lat, lon float64, lockerCount int64, warehouse bool) *topology.Port {
	t.Helper()
	coords, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	island, err := topology.NewIsland(id*10, "Island of "+name, coords, 100)
	require.NoError(t, err)
	port, err := topology.NewPort(id, name, coords, island, lockerCount, warehouse)
	require.NoError(t, err)
	return port
}

func ptr[T any](v T) *T {
	return &v
}

// memLockers keeps restored copies so handlers never share a pointer with
// the store, the way a real repository behaves.
type memLockers struct {
	mu   sync.Mutex
	byID map[kernel.ID]*locker.Locker
}

var _ ports.LockerRepository = (*memLockers)(nil)

func newMemLockers() *memLockers {
	return &memLockers{byID: map[kernel.ID]*locker.Locker{}}
}

func cloneLocker(l *locker.Locker) *locker.Locker {
	c, err := locker.RestoreLocker(
		l.ID(), l.PortID(), l.Number(), l.Status(),
		l.BoxID(), l.ReservedOrderID(), l.MaintenanceReason(), l.LastUsed(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memLockers) Add(_ context.Context, l *locker.Locker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.PortID() == l.PortID() && existing.Number() == l.Number() {
			return errs.NewConflictError("number", l.Number())
		}
	}
	m.byID[l.ID()] = cloneLocker(l)
	return nil
}

func (m *memLockers) Get(_ context.Context, id kernel.ID) (*locker.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("lockerId", id)
	}
	return cloneLocker(l), nil
}

func (m *memLockers) Update(_ context.Context, l *locker.Locker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[l.ID()]; !ok {
		return errs.NewObjectNotFoundError("lockerId", l.ID())
	}
	m.byID[l.ID()] = cloneLocker(l)
	return nil
}

func (m *memLockers) Delete(_ context.Context, id kernel.ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memLockers) MaxNumber(_ context.Context, portID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxNumber := 0
	for _, l := range m.byID {
		if l.PortID() == portID && l.Number() > maxNumber {
			maxNumber = l.Number()
		}
	}
	return maxNumber, nil
}

func (m *memLockers) Find(_ context.Context, filter ports.LockerFilter) ([]*locker.Locker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []*locker.Locker
	for _, l := range m.byID {
		if filter.PortID != nil && l.PortID() != *filter.PortID {
			continue
		}
		if filter.Status != nil && l.Status() != *filter.Status {
			continue
		}
		found = append(found, cloneLocker(l))
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Number() < found[j].Number() })
	return found, nil
}

func (m *memLockers) CountByPort(ctx context.Context, portID int) (int64, error) {
	found, err := m.Find(ctx, ports.LockerFilter{PortID: &portID})
	return int64(len(found)), err
}

func (m *memLockers) CountAllByPort(_ context.Context) (map[int]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[int]int64{}
	for _, l := range m.byID {
		counts[l.PortID()]++
	}
	return counts, nil
}

// memPorts holds a fixed set of ports with mutable counters.
type memPorts struct {
	mu     sync.Mutex
	ports  map[int]*topology.Port
	counts map[int]int64
}

var _ ports.PortRepository = (*memPorts)(nil)

func newMemPorts(all ...*topology.Port) *memPorts {
	m := &memPorts{ports: map[int]*topology.Port{}, counts: map[int]int64{}}
	for _, p := range all {
		m.ports[p.ID()] = p
		m.counts[p.ID()] = p.LockerCount()
	}
	return m
}

func (m *memPorts) withCount(p *topology.Port) *topology.Port {
	c, err := topology.NewPort(p.ID(), p.Name(), p.Coordinates(), p.Island(), m.counts[p.ID()], p.IsWarehouse())
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memPorts) Get(_ context.Context, id int) (*topology.Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.ports[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("portId", id)
	}
	return m.withCount(p), nil
}

func (m *memPorts) GetByName(_ context.Context, name string) (*topology.Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.ports {
		if p.Name() == name {
			return m.withCount(p), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("portName", name)
}

func (m *memPorts) Warehouse(_ context.Context) (*topology.Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.ports {
		if p.IsWarehouse() {
			return m.withCount(p), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("warehouse", nil)
}

func (m *memPorts) Find(_ context.Context, _ ports.PortFilter) ([]*topology.Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := make([]*topology.Port, 0, len(m.ports))
	for _, p := range m.ports {
		found = append(found, m.withCount(p))
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID() < found[j].ID() })
	return found, nil
}

func (m *memPorts) AdjustLockerCount(_ context.Context, id int, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ports[id]; !ok {
		return errs.NewObjectNotFoundError("portId", id)
	}
	m.counts[id] += int64(delta)
	return nil
}

func (m *memPorts) SetLockerCount(_ context.Context, id int, count int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[id] = count
	return nil
}

func (m *memPorts) count(id int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id]
}

type seaplaneRecord struct {
	seaplane   *seaplane.Seaplane
	stationID  *int
	flyingFrom *int
	flyingTo   *int
}

// memSeaplanes models the seaplane nodes and their port relationships.
type memSeaplanes struct {
	mu      sync.Mutex
	ports   *memPorts
	records map[string]*seaplaneRecord

	// afterGet, when set, runs once after the next Get returns its copy.
	afterGet func()
}

var _ ports.SeaplaneRepository = (*memSeaplanes)(nil)

func newMemSeaplanes(portRepo *memPorts) *memSeaplanes {
	return &memSeaplanes{ports: portRepo, records: map[string]*seaplaneRecord{}}
}

func cloneSeaplane(s *seaplane.Seaplane) *seaplane.Seaplane {
	c, err := seaplane.RestoreSeaplane(
		s.ID(), s.Model(), s.BoxCapacity(), s.FuelConsumptionKm(), s.CruiseSpeedKmh(), s.Status(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memSeaplanes) Add(_ context.Context, s *seaplane.Seaplane, stationPortID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[s.ID()]; ok {
		return errs.NewConflictError("seaplaneId", s.ID())
	}
	m.records[s.ID()] = &seaplaneRecord{seaplane: cloneSeaplane(s), stationID: &stationPortID}
	return nil
}

func (m *memSeaplanes) Get(_ context.Context, id string) (*seaplane.Seaplane, error) {
	m.mu.Lock()
	r, ok := m.records[id]
	if !ok {
		m.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("seaplaneId", id)
	}
	found := cloneSeaplane(r.seaplane)
	hook := m.afterGet
	m.afterGet = nil
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	return found, nil
}

func (m *memSeaplanes) Update(_ context.Context, id string, changes ports.SeaplaneChanges) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return errs.NewObjectNotFoundError("seaplaneId", id)
	}

	current := r.seaplane
	if changes.Status != nil && current.Status() != changes.ExpectedStatus {
		return errs.NewConflictError("seaplane", id)
	}

	model, capacity := current.Model(), current.BoxCapacity()
	fuel, speed, status := current.FuelConsumptionKm(), current.CruiseSpeedKmh(), current.Status()
	if changes.Model != nil {
		model = *changes.Model
	}
	if changes.BoxCapacity != nil {
		capacity = *changes.BoxCapacity
	}
	if changes.FuelConsumptionKm != nil {
		fuel = *changes.FuelConsumptionKm
	}
	if changes.CruiseSpeedKmh != nil {
		speed = *changes.CruiseSpeedKmh
	}
	if changes.Status != nil {
		status = *changes.Status
	}

	updated, err := seaplane.RestoreSeaplane(id, model, capacity, fuel, speed, status)
	if err != nil {
		return err
	}
	r.seaplane = updated
	return nil
}

func (m *memSeaplanes) port(id *int) *topology.Port {
	if id == nil {
		return nil
	}
	p, err := m.ports.Get(context.Background(), *id)
	if err != nil {
		return nil
	}
	return p
}

func (m *memSeaplanes) Positions(_ context.Context, id *string) ([]ports.SeaplanePosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var positions []ports.SeaplanePosition
	for key, r := range m.records {
		if id != nil && key != *id {
			continue
		}
		positions = append(positions, ports.SeaplanePosition{
			Seaplane: cloneSeaplane(r.seaplane),
			Position: seaplane.Position{
				Station:    m.port(r.stationID),
				FlyingFrom: m.port(r.flyingFrom),
				FlyingTo:   m.port(r.flyingTo),
			},
		})
	}
	return positions, nil
}

func (m *memSeaplanes) StartFlight(_ context.Context, id string, fromPortID, toPortID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return errs.NewObjectNotFoundError("seaplaneId", id)
	}
	flying, err := seaplane.RestoreSeaplane(
		r.seaplane.ID(), r.seaplane.Model(), r.seaplane.BoxCapacity(),
		r.seaplane.FuelConsumptionKm(), r.seaplane.CruiseSpeedKmh(), seaplane.InFlight,
	)
	if err != nil {
		return err
	}
	r.seaplane = flying
	r.stationID, r.flyingFrom, r.flyingTo = nil, &fromPortID, &toPortID
	return nil
}

func (m *memSeaplanes) Land(_ context.Context, id string, portID int, status seaplane.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return errs.NewObjectNotFoundError("seaplaneId", id)
	}
	landed, err := seaplane.RestoreSeaplane(
		r.seaplane.ID(), r.seaplane.Model(), r.seaplane.BoxCapacity(),
		r.seaplane.FuelConsumptionKm(), r.seaplane.CruiseSpeedKmh(), status,
	)
	if err != nil {
		return err
	}
	r.seaplane = landed
	r.stationID, r.flyingFrom, r.flyingTo = &portID, nil, nil
	return nil
}

func (m *memSeaplanes) HasFlightRelationships(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	return ok && (r.flyingFrom != nil || r.flyingTo != nil), nil
}

func (m *memSeaplanes) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[id]
	delete(m.records, id)
	return ok, nil
}

func (m *memSeaplanes) relationships(id string) (station, from, to *int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.records[id]
	return r.stationID, r.flyingFrom, r.flyingTo
}

type memOrders struct {
	mu   sync.Mutex
	byID map[kernel.ID]*order.Order

	// afterGet, when set, runs once after the next Get returns its copy.
	afterGet func()
}

var _ ports.OrderRepository = (*memOrders)(nil)

func newMemOrders() *memOrders {
	return &memOrders{byID: map[kernel.ID]*order.Order{}}
}

func cloneOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(
		o.ID(), o.ClientID(), o.OrderDate(), o.Status(), o.Priority(), o.DeliveryPort(),
		o.Lines(), o.BoxCount(), o.BoxesDelivered(), o.TotalWeightKg(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memOrders) Add(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[o.ID()] = cloneOrder(o)
	return nil
}

func (m *memOrders) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	m.mu.Lock()
	o, ok := m.byID[id]
	if !ok {
		m.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	found := cloneOrder(o)
	hook := m.afterGet
	m.afterGet = nil
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	return found, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id kernel.ID, status order.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return o.AdvanceStatus(status)
}

func (m *memOrders) SetBoxesDelivered(_ context.Context, id kernel.ID, delivered int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return o.RecordDeliveredBoxes(delivered)
}

func (m *memOrders) Delete(_ context.Context, id kernel.ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memOrders) Find(_ context.Context, _ ports.OrderFilter) ([]*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := make([]*order.Order, 0, len(m.byID))
	for _, o := range m.byID {
		found = append(found, cloneOrder(o))
	}
	return found, nil
}

func newTestOrder(t *testing.T, boxCount int) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewID(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewID(), "", ayoraName, []order.Line{line}, boxCount, 3, time.Now())
	require.NoError(t, err)
	return o
}
