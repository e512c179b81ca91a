package commands

import (
	"errors"
	"fmt"
	"time"

	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand plans a seaplane flight carrying boxes of one order
// along a route of port names, departure first.
type ScheduleDeliveryCommand struct {
	orderID            kernel.ID
	seaplaneID         string
	route              []string
	scheduledDeparture *time.Time
	boxes              []kernel.ID

	guard guard.ConstructorGuard
}

func NewScheduleDeliveryCommand(
	orderID string,
	seaplaneID string,
	route []string,
	scheduledDeparture *time.Time,
	boxes []string,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		scheduledDeparture: scheduledDeparture,
		guard:              guard.NewConstructorGuard(),
	}

	var orderErr, seaplaneErr error
	cmd.orderID, orderErr = kernel.ParseID("orderId", orderID)
	cmd.seaplaneID, seaplaneErr = requireText("seaplaneId", seaplaneID)

	if err := errors.Join(
		orderErr,
		seaplaneErr,
		cmd.setRoute(route),
		cmd.setBoxes(boxes),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

func (c ScheduleDeliveryCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ScheduleDeliveryCommand) SeaplaneID() string {
	return c.seaplaneID
}

func (c ScheduleDeliveryCommand) Route() []string {
	return append([]string(nil), c.route...)
}

func (c ScheduleDeliveryCommand) ScheduledDeparture() *time.Time {
	return c.scheduledDeparture
}

func (c ScheduleDeliveryCommand) Boxes() []kernel.ID {
	return append([]kernel.ID(nil), c.boxes...)
}

func (c *ScheduleDeliveryCommand) setRoute(route []string) error {
	if len(route) < delivery.MinRouteLength {
		return errs.NewValueIsInvalidErrorWithCause("route",
			fmt.Errorf("a route needs at least %d ports, got %d", delivery.MinRouteLength, len(route)))
	}

	names := make([]string, 0, len(route))
	for i, name := range route {
		trimmed, err := requireText(fmt.Sprintf("route[%d]", i), name)
		if err != nil {
			return err
		}
		names = append(names, trimmed)
	}

	c.route = names
	return nil
}

func (c *ScheduleDeliveryCommand) setBoxes(boxes []string) error {
	ids := make([]kernel.ID, 0, len(boxes))
	for i, hex := range boxes {
		id, err := kernel.ParseID(fmt.Sprintf("boxes[%d]", i), hex)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	c.boxes = ids
	return nil
}
