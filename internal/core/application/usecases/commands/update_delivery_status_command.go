package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

type UpdateDeliveryStatusCommand struct {
	deliveryID  kernel.ID
	status      delivery.Status
	delayReason string
	currentPort *string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	deliveryID string,
	status string,
	delayReason string,
	currentPort *string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		delayReason: delayReason,
		currentPort: currentPort,
		guard:       guard.NewConstructorGuard(),
	}

	var idErr, statusErr error
	cmd.deliveryID, idErr = kernel.ParseID("deliveryId", deliveryID)
	cmd.status, statusErr = delivery.ParseStatus(status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}

func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c UpdateDeliveryStatusCommand) DelayReason() string {
	return c.delayReason
}

func (c UpdateDeliveryStatusCommand) CurrentPort() *string {
	return c.currentPort
}
