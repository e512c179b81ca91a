package commands_test

import (
	"sync"
	"testing"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 2)
	require.NoError(t, orders.Add(ctx, o))

	handler := commands.NewUpdateOrderStatusCommandHandler(orders)

	forward, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "in_transit")
	updated, err := handler.Handle(ctx, forward)
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, updated.Status())

	back, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "PENDING")
	_, err = handler.Handle(ctx, back)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	stored, err := orders.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, stored.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_RegressionWritesNothing(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 1)
	require.NoError(t, o.AdvanceStatus(order.Delivered))

	orders := new(portsmock.OrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(orders)
	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "PARTIALLY_DELIVERED")

	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_StaleReadNeverRegresses(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 2)
	require.NoError(t, orders.Add(ctx, o))

	handler := commands.NewUpdateOrderStatusCommandHandler(orders)
	orders.afterGet = func() {
		delivered, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "DELIVERED")
		_, err := handler.Handle(ctx, delivered)
		require.NoError(t, err)
	}

	cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "IN_TRANSIT")
	_, err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	stored, err := orders.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, stored.Status())
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand("64b7f0c2a1b2c3d4e5f60718", "LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRecordDeliveredBoxesCommandHandler_Handle_Bounds(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 3)
	require.NoError(t, orders.Add(ctx, o))

	handler := commands.NewRecordDeliveredBoxesCommandHandler(orders)

	cmd, _ := commands.NewRecordDeliveredBoxesCommand(o.ID().String(), 3)
	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.BoxesDelivered())

	tooMany, _ := commands.NewRecordDeliveredBoxesCommand(o.ID().String(), 4)
	_, err = handler.Handle(ctx, tooMany)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewRecordDeliveredBoxesCommand(o.ID().String(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestRecordDeliveredBoxesCommandHandler_Handle_KeepsConcurrentStatusChange(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 2)
	require.NoError(t, orders.Add(ctx, o))

	statusHandler := commands.NewUpdateOrderStatusCommandHandler(orders)
	orders.afterGet = func() {
		delivered, _ := commands.NewUpdateOrderStatusCommand(o.ID().String(), "DELIVERED")
		_, err := statusHandler.Handle(ctx, delivered)
		require.NoError(t, err)
	}

	handler := commands.NewRecordDeliveredBoxesCommandHandler(orders)
	cmd, _ := commands.NewRecordDeliveredBoxesCommand(o.ID().String(), 2)
	_, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	stored, err := orders.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, stored.Status())
	assert.Equal(t, 2, stored.BoxesDelivered())
}

func TestRecordDeliveredBoxesCommandHandler_Handle_WritesCountOnly(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 3)

	orders := new(portsmock.OrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("SetBoxesDelivered", ctx, o.ID(), 1).Return(nil).Once()

	handler := commands.NewRecordDeliveredBoxesCommandHandler(orders)
	cmd, _ := commands.NewRecordDeliveredBoxesCommand(o.ID().String(), 1)

	_, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// The bound is checked per call against its own read. Concurrent writers all
// pass and the stored value is whichever write landed last.
func TestRecordDeliveredBoxesCommandHandler_Handle_ConcurrentWritersRace(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 5)
	require.NoError(t, orders.Add(ctx, o))

	handler := commands.NewRecordDeliveredBoxesCommandHandler(orders)
	values := []int{1, 2, 3, 4, 5}

	var wg sync.WaitGroup
	errList := make([]error, len(values))
	for i, v := range values {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, _ := commands.NewRecordDeliveredBoxesCommand(o.ID().String(), v)
			_, errList[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	for _, err := range errList {
		require.NoError(t, err)
	}
	stored, err := orders.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Contains(t, values, stored.BoxesDelivered())
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	orders := newMemOrders()
	o := newTestOrder(t, 1)
	require.NoError(t, orders.Add(ctx, o))

	handler := commands.NewDeleteOrderCommandHandler(orders)
	cmd, _ := commands.NewDeleteOrderCommand(o.ID().String())

	removed, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, removed)
}
