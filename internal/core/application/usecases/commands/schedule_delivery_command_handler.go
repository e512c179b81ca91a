package commands

import (
	"context"
	"errors"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/core/domain/model/topology"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

var ErrBoxNotInOrder = errors.New("box belongs to another order")

// ScheduleDeliveryCommandHandler validates a route against both stores and
// inserts the SCHEDULED delivery.
//
// The order and boxes are read from the business store, the seaplane and
// ports from the topology store. Distance and fuel come from the route
// planner.
type ScheduleDeliveryCommandHandler struct {
	deliveries  ports.DeliveryRepository
	orders      ports.OrderRepository
	boxes       ports.BoxRepository
	seaplanes   ports.SeaplaneRepository
	ports       ports.PortRepository
	planner     services.RoutePlanner
	coordinator *consistency.Coordinator
}

func NewScheduleDeliveryCommandHandler(
	deliveries ports.DeliveryRepository,
	orders ports.OrderRepository,
	boxes ports.BoxRepository,
	seaplanes ports.SeaplaneRepository,
	portRepo ports.PortRepository,
	planner services.RoutePlanner,
	coordinator *consistency.Coordinator,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		deliveries:  deliveries,
		orders:      orders,
		boxes:       boxes,
		seaplanes:   seaplanes,
		ports:       portRepo,
		planner:     planner,
		coordinator: coordinator,
	}
}

func (h ScheduleDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ScheduleDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		plane     *seaplane.Seaplane
		stops     []*topology.Port
		scheduled *delivery.Delivery
	)

	_, err := h.coordinator.Execute(ctx, consistency.Plan{
		Operation: "schedule_delivery",
		Checks: []consistency.Step{
			{Name: "order_exists", Run: func(ctx context.Context) error {
				_, err := h.orders.Get(ctx, cmd.OrderID())
				return err
			}},
			{Name: "boxes_belong_to_order", Run: func(ctx context.Context) error {
				for _, id := range cmd.Boxes() {
					b, err := h.boxes.Get(ctx, id)
					if err != nil {
						return err
					}
					if !b.OrderID().IsEqual(cmd.OrderID()) {
						return errs.NewValueIsInvalidErrorWithCause("boxes", ErrBoxNotInOrder)
					}
				}
				return nil
			}},
			{Name: "seaplane_exists", Run: func(ctx context.Context) error {
				var err error
				plane, err = h.seaplanes.Get(ctx, cmd.SeaplaneID())
				return err
			}},
			{Name: "route_resolves", Run: func(ctx context.Context) error {
				for _, name := range cmd.Route() {
					port, err := h.ports.GetByName(ctx, name)
					if err != nil {
						return err
					}
					stops = append(stops, port)
				}
				return nil
			}},
			{Name: "plan_route", Run: func(context.Context) error {
				plan, err := h.planner.Plan(plane, stops, cmd.Boxes(), cmd.ScheduledDeparture())
				if err != nil {
					return err
				}
				scheduled, err = delivery.NewDelivery(cmd.OrderID(), plane.ID(), plan)
				return err
			}},
		},
		Primary: consistency.Step{Name: "insert_delivery", Run: func(ctx context.Context) error {
			return h.deliveries.Add(ctx, scheduled)
		}},
	})
	if err != nil {
		return nil, err
	}

	return scheduled, nil
}
