package commands_test

import (
	"testing"

	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/ports/portsmock"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBoxCommandHandler_Handle_ClientDefaultsToOrderClient(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 2)

	boxes := new(portsmock.BoxRepository)
	orders := new(portsmock.OrderRepository)
	mock.InOrder(
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		boxes.On("Add", ctx, mock.AnythingOfType("*box.Box")).Return(nil).Once(),
	)

	handler := commands.NewCreateBoxCommandHandler(boxes, orders)
	cmd, _ := commands.NewCreateBoxCommand(o.ID().String(), nil, 1, nil, "insulin")

	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ClientID().IsEqual(o.ClientID()))
	assert.True(t, created.OrderID().IsEqual(o.ID()))
	assert.Equal(t, box.Pending, created.Status())
	boxes.AssertExpectations(t)
}

func TestCreateBoxCommandHandler_Handle_ClientMustMatchOrder(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, 2)

	boxes := new(portsmock.BoxRepository)
	orders := new(portsmock.OrderRepository)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	handler := commands.NewCreateBoxCommandHandler(boxes, orders)
	other := kernel.NewID().String()
	cmd, _ := commands.NewCreateBoxCommand(o.ID().String(), &other, 1, nil, "")

	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBoxClientMismatch)
	boxes.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateBoxCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewID()

	orders := new(portsmock.OrderRepository)
	orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	handler := commands.NewCreateBoxCommandHandler(new(portsmock.BoxRepository), orders)
	cmd, _ := commands.NewCreateBoxCommand(orderID.String(), nil, 1, nil, "")

	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCreateBoxCommand_MalformedIDs(t *testing.T) {
	bad := "nope"
	_, err := commands.NewCreateBoxCommand("nope", &bad, 1, ptr("SHIPPED"), "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "orderId")
	assert.Contains(t, err.Error(), "clientId")
	assert.Contains(t, err.Error(), "status")
}

func TestUpdateBoxCommandHandler_Handle_StatusOnlyMovesForward(t *testing.T) {
	ctx := t.Context()
	b, _ := box.NewBox(kernel.NewID(), kernel.NewID(), 1, box.InTransit, "")

	boxes := new(portsmock.BoxRepository)
	boxes.On("Get", ctx, b.ID()).Return(b, nil)
	boxes.On("Update", ctx, b).Return(nil).Once()

	handler := commands.NewUpdateBoxCommandHandler(boxes)

	back, _ := commands.NewUpdateBoxCommand(b.ID().String(), nil, ptr("PENDING"), nil)
	_, err := handler.Handle(ctx, back)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	forward, _ := commands.NewUpdateBoxCommand(b.ID().String(), ptr(2), ptr("delivered"), ptr("insulin"))
	updated, err := handler.Handle(ctx, forward)
	require.NoError(t, err)
	assert.Equal(t, box.Delivered, updated.Status())
	assert.Equal(t, 2, updated.Number())
	assert.Equal(t, "insulin", updated.Content())
	boxes.AssertExpectations(t)
}

func TestNewUpdateBoxCommand_NothingToUpdate(t *testing.T) {
	_, err := commands.NewUpdateBoxCommand(kernel.NewID().String(), nil, nil, nil)
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}
