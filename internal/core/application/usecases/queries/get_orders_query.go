package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrGetBoxesQueryIsNotConstructed = errors.New(
		"GetBoxesQuery must be created via NewGetBoxesQuery constructor",
	)
)

// GetOrdersQuery lists orders by id, client and status.
type GetOrdersQuery struct {
	id       *kernel.ID
	clientID *kernel.ID
	status   *order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(id, clientID, status *string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	var idErr, clientErr, statusErr error
	q.id, idErr = optionalID("id", id)
	q.clientID, clientErr = optionalID("clientId", clientID)
	q.status, statusErr = parseOptional(optionalText(status), order.ParseStatus)

	if err := errors.Join(idErr, clientErr, statusErr); err != nil {
		return GetOrdersQuery{}, err
	}
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) ID() *kernel.ID {
	return q.id
}

func (q GetOrdersQuery) ClientID() *kernel.ID {
	return q.clientID
}

func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetBoxesQuery lists boxes by id, order, client and status.
type GetBoxesQuery struct {
	id       *kernel.ID
	orderID  *kernel.ID
	clientID *kernel.ID
	status   *box.Status

	guard guard.ConstructorGuard
}

func NewGetBoxesQuery(id, orderID, clientID, status *string) (GetBoxesQuery, error) {
	q := GetBoxesQuery{guard: guard.NewConstructorGuard()}

	var idErr, orderErr, clientErr, statusErr error
	q.id, idErr = optionalID("id", id)
	q.orderID, orderErr = optionalID("orderId", orderID)
	q.clientID, clientErr = optionalID("clientId", clientID)
	q.status, statusErr = parseOptional(optionalText(status), box.ParseStatus)

	if err := errors.Join(idErr, orderErr, clientErr, statusErr); err != nil {
		return GetBoxesQuery{}, err
	}
	return q, nil
}

func (q GetBoxesQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxesQueryIsNotConstructed)
}

func (q GetBoxesQuery) ID() *kernel.ID {
	return q.id
}

func (q GetBoxesQuery) OrderID() *kernel.ID {
	return q.orderID
}

func (q GetBoxesQuery) ClientID() *kernel.ID {
	return q.clientID
}

func (q GetBoxesQuery) Status() *box.Status {
	return q.status
}
