package commands_test

import (
	"errors"
	"testing"
	"time"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	fleet      fleetFixture
	orders     *memOrders
	boxes      *portsmock.BoxRepository
	deliveries *portsmock.DeliveryRepository
	order      *order.Order
	handler    commands.ScheduleDeliveryCommandHandler
}

func newDeliveryFixture(t *testing.T, capacity int) (deliveryFixture, func(string) prometheus.Counter) {
	t.Helper()
	f := deliveryFixture{
		fleet:      newFleetFixture(t),
		orders:     newMemOrders(),
		boxes:      new(portsmock.BoxRepository),
		deliveries: new(portsmock.DeliveryRepository),
		order:      newTestOrder(t, 3),
	}
	require.NoError(t, f.orders.Add(t.Context(), f.order))

	handler := commands.NewCreateSeaplaneCommandHandler(f.fleet.seaplanes, f.fleet.ports, f.fleet.locator)
	cmd, err := commands.NewCreateSeaplaneCommand("HC-GPS", "Cessna", ptr(capacity), ptr(1.8), ptr(260.0), "", nil)
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), cmd)
	require.NoError(t, err)

	coordinator, metrics := newCoordinator(t)
	f.handler = commands.NewScheduleDeliveryCommandHandler(
		f.deliveries, f.orders, f.boxes, f.fleet.seaplanes, f.fleet.ports, services.NewRoutePlanner(), coordinator,
	)
	return f, func(outcome string) prometheus.Counter { return metrics.Plans("schedule_delivery", outcome) }
}

func (f deliveryFixture) box(t *testing.T, orderID kernel.ID, number int) *box.Box {
	t.Helper()
	b, err := box.NewBox(orderID, f.order.ClientID(), number, box.Pending, "")
	require.NoError(t, err)
	f.boxes.On("Get", mock.Anything, b.ID()).Return(b, nil)
	return b
}

func TestScheduleDeliveryCommandHandler_Handle(t *testing.T) {
	f, plans := newDeliveryFixture(t, 12)
	b1, b2 := f.box(t, f.order.ID(), 1), f.box(t, f.order.ID(), 2)
	f.deliveries.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()

	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleDeliveryCommand(
		f.order.ID().String(), "HC-GPS", []string{warehouseName, ayoraName}, &departure,
		[]string{b1.ID().String(), b2.ID().String()},
	)
	require.NoError(t, err)

	scheduled, err := f.handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Scheduled, scheduled.Status())
	assert.Equal(t, warehouseName, scheduled.CurrentPort())
	assert.Equal(t, ayoraName, scheduled.DestinationPort())
	assert.Len(t, scheduled.TransportedBoxes(), 2)
	assert.Greater(t, scheduled.TotalDistanceKm(), 70.0)
	assert.InDelta(t, scheduled.TotalDistanceKm()*1.8, scheduled.EstimatedFuelL(), 1e-9)
	assert.Equal(t, &departure, scheduled.ScheduledDeparture())
	assert.InDelta(t, 1, testutil.ToFloat64(plans("committed")), 0)
	f.deliveries.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_OverCapacity(t *testing.T) {
	f, plans := newDeliveryFixture(t, 1)
	b1, b2 := f.box(t, f.order.ID(), 1), f.box(t, f.order.ID(), 2)

	cmd, _ := commands.NewScheduleDeliveryCommand(
		f.order.ID().String(), "HC-GPS", []string{warehouseName, ayoraName}, nil,
		[]string{b1.ID().String(), b2.ID().String()},
	)

	_, err := f.handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.InDelta(t, 1, testutil.ToFloat64(plans("rejected")), 0)
	f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryCommandHandler_Handle_BoxOfAnotherOrder(t *testing.T) {
	f, _ := newDeliveryFixture(t, 12)
	foreign := f.box(t, kernel.NewID(), 1)

	cmd, _ := commands.NewScheduleDeliveryCommand(
		f.order.ID().String(), "HC-GPS", []string{warehouseName, ayoraName}, nil,
		[]string{foreign.ID().String()},
	)

	_, err := f.handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrBoxNotInOrder)
	f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryCommandHandler_Handle_UnresolvedReferences(t *testing.T) {
	tests := []struct {
		name       string
		seaplaneID string
		route      []string
		wantErr    error
	}{
		{"unknown seaplane", "HC-NOPE", []string{warehouseName, ayoraName}, errs.ErrObjectNotFound},
		{"unknown port", "HC-GPS", []string{warehouseName, "Puerto Velasco Ibarra"}, errs.ErrObjectNotFound},
		{"revisits a port", "HC-GPS", []string{warehouseName, warehouseName}, services.ErrRouteRevisitsPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newDeliveryFixture(t, 12)
			cmd, err := commands.NewScheduleDeliveryCommand(f.order.ID().String(), tt.seaplaneID, tt.route, nil, nil)
			require.NoError(t, err)

			_, err = f.handler.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, tt.wantErr)
			f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestScheduleDeliveryCommandHandler_Handle_InsertFailure(t *testing.T) {
	f, plans := newDeliveryFixture(t, 12)
	storeDown := errs.NewStoreUnavailableError("mongodb", errors.New("no reachable servers"))
	f.deliveries.On("Add", mock.Anything, mock.Anything).Return(storeDown).Once()

	cmd, _ := commands.NewScheduleDeliveryCommand(
		f.order.ID().String(), "HC-GPS", []string{warehouseName, ayoraName}, nil, nil,
	)

	_, err := f.handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	assert.InDelta(t, 1, testutil.ToFloat64(plans("failed")), 0)
}

func TestNewScheduleDeliveryCommand_Validation(t *testing.T) {
	_, err := commands.NewScheduleDeliveryCommand("", " ", []string{warehouseName}, nil, []string{"x"})

	require.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "orderId")
	assert.Contains(t, err.Error(), "seaplaneId")
	assert.Contains(t, err.Error(), "route")
	assert.Contains(t, err.Error(), "boxes[0]")
}
