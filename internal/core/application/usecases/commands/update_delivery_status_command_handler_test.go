package commands_test

import (
	"errors"
	"testing"
	"time"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduledDelivery(t *testing.T, o *order.Order) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(o.ID(), "HC-GPS", delivery.Plan{
		Route:          []string{warehouseName, "Puerto Villamil", ayoraName},
		DistanceKm:     150,
		EstimatedFuelL: 270,
	})
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_StartAdvancesOrder(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 2)
	orders := newMemOrders()
	require.NoError(t, orders.Add(ctx, o))
	d := newScheduledDelivery(t, o)

	deliveries := new(portsmock.DeliveryRepository)
	mock.InOrder(
		deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		deliveries.On("Update", mock.Anything, d).Return(nil).Once(),
	)

	coordinator, metrics := newCoordinator(t)
	handler := commands.NewUpdateDeliveryStatusCommandHandler(deliveries, orders, coordinator)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID().String(), "in_progress", "", nil)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InProgress, updated.Status())
	assert.NotNil(t, updated.DepartureDate())

	stored, err := orders.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, stored.Status())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Plans("update_delivery_status", "committed")), 0)
	deliveries.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_LaterOrderIsLeftAlone(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 2)
	require.NoError(t, o.AdvanceStatus(order.PartiallyDelivered))
	orders := newMemOrders()
	require.NoError(t, orders.Add(ctx, o))
	d := newScheduledDelivery(t, o)

	deliveries := new(portsmock.DeliveryRepository)
	deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveries.On("Update", mock.Anything, d).Return(nil).Once()

	coordinator, _ := newCoordinator(t)
	handler := commands.NewUpdateDeliveryStatusCommandHandler(deliveries, orders, coordinator)
	cmd, _ := commands.NewUpdateDeliveryStatusCommand(d.ID().String(), "IN_PROGRESS", "", nil)

	_, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	stored, _ := orders.Get(ctx, o.ID())
	assert.Equal(t, order.PartiallyDelivered, stored.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_OrderAdvanceFailureIsDegraded(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 2)
	d := newScheduledDelivery(t, o)

	deliveries := new(portsmock.DeliveryRepository)
	deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveries.On("Update", mock.Anything, d).Return(nil).Once()
	orders := new(portsmock.OrderRepository)
	orders.On("Get", mock.Anything, o.ID()).
		Return(nil, errs.NewStoreUnavailableError("mongodb", errors.New("timeout"))).Once()

	coordinator, metrics := newCoordinator(t)
	handler := commands.NewUpdateDeliveryStatusCommandHandler(deliveries, orders, coordinator)
	cmd, _ := commands.NewUpdateDeliveryStatusCommand(d.ID().String(), "IN_PROGRESS", "", nil)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.InProgress, updated.Status())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.SecondaryFailures("update_delivery_status", "advance_order")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Plans("update_delivery_status", "degraded")), 0)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		delayReason string
		currentPort *string
		wantErr     error
	}{
		{"delay without reason", "DELAYED", " ", nil, errs.ErrValueIsRequired},
		{"complete before start", "COMPLETED", "", nil, errs.ErrInvalidTransition},
		{"reschedule", "SCHEDULED", "", nil, errs.ErrInvalidTransition},
		{"port off route", "DELAYED", "storm", ptr("Puerto Velasco Ibarra"), errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(t, 2)
			d := newScheduledDelivery(t, o)

			deliveries := new(portsmock.DeliveryRepository)
			deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
			orders := new(portsmock.OrderRepository)

			coordinator, _ := newCoordinator(t)
			handler := commands.NewUpdateDeliveryStatusCommandHandler(deliveries, orders, coordinator)
			cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID().String(), tt.status, tt.delayReason, tt.currentPort)
			require.NoError(t, err)

			_, err = handler.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, delivery.Scheduled, d.Status())
			deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CompleteMovesToDestination(t *testing.T) {
	o := newTestOrder(t, 2)
	d := newScheduledDelivery(t, o)
	require.NoError(t, d.ChangeStatus(delivery.InProgress, "", ptr("Puerto Villamil"), time.Now()))

	deliveries := new(portsmock.DeliveryRepository)
	deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveries.On("Update", mock.Anything, d).Return(nil).Once()

	coordinator, _ := newCoordinator(t)
	handler := commands.NewUpdateDeliveryStatusCommandHandler(deliveries, new(portsmock.OrderRepository), coordinator)
	cmd, _ := commands.NewUpdateDeliveryStatusCommand(d.ID().String(), "completed", "", nil)

	updated, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, updated.Status())
	assert.Equal(t, ayoraName, updated.CurrentPort())
	assert.NotNil(t, updated.ArrivalDate())
}
