package commands

import (
	"context"
	"errors"
	"time"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler moves deliveries through their
// lifecycle. When a delivery starts, its order is advanced to IN_TRANSIT as a
// best-effort secondary write.
type UpdateDeliveryStatusCommandHandler struct {
	deliveries  ports.DeliveryRepository
	orders      ports.OrderRepository
	coordinator *consistency.Coordinator
}

func NewUpdateDeliveryStatusCommandHandler(
	deliveries ports.DeliveryRepository,
	orders ports.OrderRepository,
	coordinator *consistency.Coordinator,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		deliveries:  deliveries,
		orders:      orders,
		coordinator: coordinator,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var d *delivery.Delivery

	plan := consistency.Plan{
		Operation: "update_delivery_status",
		Checks: []consistency.Step{
			{Name: "transition_allowed", Run: func(ctx context.Context) error {
				var err error
				if d, err = h.deliveries.Get(ctx, cmd.DeliveryID()); err != nil {
					return err
				}
				return d.ChangeStatus(cmd.Status(), cmd.DelayReason(), cmd.CurrentPort(), time.Now().UTC())
			}},
		},
		Primary: consistency.Step{Name: "update_delivery", Run: func(ctx context.Context) error {
			return h.deliveries.Update(ctx, d)
		}},
	}

	if cmd.Status() == delivery.InProgress {
		plan.Secondaries = append(plan.Secondaries, consistency.Step{
			Name: "advance_order",
			Run: func(ctx context.Context) error {
				return h.advanceOrder(ctx, d.OrderID())
			},
		})
	}

	if _, err := h.coordinator.Execute(ctx, plan); err != nil {
		return nil, err
	}

	return d, nil
}

// advanceOrder moves a PENDING order to IN_TRANSIT. Orders already further
// along are left as they are.
func (h UpdateDeliveryStatusCommandHandler) advanceOrder(ctx context.Context, orderID kernel.ID) error {
	o, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Status() != order.Pending {
		return nil
	}
	err = h.orders.UpdateStatus(ctx, orderID, order.InTransit)
	if errors.Is(err, errs.ErrInvalidTransition) {
		return nil
	}
	return err
}
