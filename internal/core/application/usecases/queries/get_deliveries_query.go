package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery lists deliveries by order, seaplane and status.
type GetDeliveriesQuery struct {
	orderID    *kernel.ID
	seaplaneID *string
	status     *delivery.Status

	guard guard.ConstructorGuard
}

func NewGetDeliveriesQuery(orderID, seaplaneID, status *string) (GetDeliveriesQuery, error) {
	q := GetDeliveriesQuery{
		seaplaneID: optionalText(seaplaneID),
		guard:      guard.NewConstructorGuard(),
	}

	var orderErr, statusErr error
	q.orderID, orderErr = optionalID("orderId", orderID)
	q.status, statusErr = parseOptional(optionalText(status), delivery.ParseStatus)

	if err := errors.Join(orderErr, statusErr); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return q, nil
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

func (q GetDeliveriesQuery) OrderID() *kernel.ID {
	return q.orderID
}

func (q GetDeliveriesQuery) SeaplaneID() *string {
	return q.seaplaneID
}

func (q GetDeliveriesQuery) Status() *delivery.Status {
	return q.status
}
