package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrRecordDeliveredBoxesCommandIsNotConstructed = errors.New(
	"RecordDeliveredBoxesCommand must be created via NewRecordDeliveredBoxesCommand constructor",
)

type RecordDeliveredBoxesCommand struct {
	orderID        kernel.ID
	boxesDelivered int

	guard guard.ConstructorGuard
}

func NewRecordDeliveredBoxesCommand(orderID string, boxesDelivered int) (RecordDeliveredBoxesCommand, error) {
	id, err := kernel.ParseID("orderId", orderID)
	if err != nil {
		return RecordDeliveredBoxesCommand{}, err
	}
	if boxesDelivered < 0 {
		return RecordDeliveredBoxesCommand{}, errs.NewValueIsOutOfRangeError("boxesDelivered", boxesDelivered, 0, "boxCount")
	}

	return RecordDeliveredBoxesCommand{
		orderID:        id,
		boxesDelivered: boxesDelivered,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RecordDeliveredBoxesCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveredBoxesCommandIsNotConstructed)
}

func (c RecordDeliveredBoxesCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c RecordDeliveredBoxesCommand) BoxesDelivered() int {
	return c.boxesDelivered
}
