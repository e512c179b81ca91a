package portsmock

import (
	"context"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ ports.LockerRepository   = (*LockerRepository)(nil)
	_ ports.OrderRepository    = (*OrderRepository)(nil)
	_ ports.BoxRepository      = (*BoxRepository)(nil)
	_ ports.ClientRepository   = (*ClientRepository)(nil)
	_ ports.ProductRepository  = (*ProductRepository)(nil)
	_ ports.DeliveryRepository = (*DeliveryRepository)(nil)
)

type LockerRepository struct{ mock.Mock }

func (m *LockerRepository) Add(ctx context.Context, l *locker.Locker) error {
	return m.Called(ctx, l).Error(0)
}

func (m *LockerRepository) Get(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*locker.Locker)
	return l, args.Error(1)
}

func (m *LockerRepository) Update(ctx context.Context, l *locker.Locker) error {
	return m.Called(ctx, l).Error(0)
}

func (m *LockerRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *LockerRepository) MaxNumber(ctx context.Context, portID int) (int, error) {
	args := m.Called(ctx, portID)
	return args.Int(0), args.Error(1)
}

func (m *LockerRepository) Find(ctx context.Context, filter ports.LockerFilter) ([]*locker.Locker, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*locker.Locker)
	return found, args.Error(1)
}

func (m *LockerRepository) CountByPort(ctx context.Context, portID int) (int64, error) {
	args := m.Called(ctx, portID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *LockerRepository) CountAllByPort(ctx context.Context) (map[int]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[int]int64)
	return counts, args.Error(1)
}

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) SetBoxesDelivered(ctx context.Context, id kernel.ID, delivered int) error {
	return m.Called(ctx, id, delivered).Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*order.Order)
	return found, args.Error(1)
}

type BoxRepository struct{ mock.Mock }

func (m *BoxRepository) Add(ctx context.Context, b *box.Box) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BoxRepository) Get(ctx context.Context, id kernel.ID) (*box.Box, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*box.Box)
	return b, args.Error(1)
}

func (m *BoxRepository) Update(ctx context.Context, b *box.Box) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BoxRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BoxRepository) Find(ctx context.Context, filter ports.BoxFilter) ([]*box.Box, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*box.Box)
	return found, args.Error(1)
}

type ClientRepository struct{ mock.Mock }

func (m *ClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}

func (m *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ClientRepository) Find(ctx context.Context, filter ports.ClientFilter) ([]*client.Client, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*client.Client)
	return found, args.Error(1)
}

func (m *ClientRepository) AppendOrder(ctx context.Context, clientID, orderID kernel.ID) error {
	return m.Called(ctx, clientID, orderID).Error(0)
}

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) Find(ctx context.Context, filter ports.ProductFilter) ([]*product.Product, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*product.Product)
	return found, args.Error(1)
}

func (m *ProductRepository) DecrementStock(ctx context.Context, id kernel.ID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type DeliveryRepository struct{ mock.Mock }

func (m *DeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *DeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DeliveryRepository) Find(ctx context.Context, filter ports.DeliveryFilter) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, filter)
	found, _ := args.Get(0).([]*delivery.Delivery)
	return found, args.Error(1)
}

func (m *DeliveryRepository) CountBySeaplaneAndStatus(
	ctx context.Context,
	seaplaneID string,
	status delivery.Status,
) (int64, error) {
	args := m.Called(ctx, seaplaneID, status)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
