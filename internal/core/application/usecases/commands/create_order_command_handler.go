package commands

import (
	"context"
	"time"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
)

// CreateOrderCommandHandler places orders.
//
// The order document is the primary write. Stock decrements and the client
// history append follow as secondary writes: a failure there leaves the order
// in place and is reported through logs and metrics only.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(orders, clients, products, portRepo, coordinator)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// o.Status() == order.Pending
type CreateOrderCommandHandler struct {
	orders      ports.OrderRepository
	clients     ports.ClientRepository
	products    ports.ProductRepository
	ports       ports.PortRepository
	coordinator *consistency.Coordinator
}

func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	clients ports.ClientRepository,
	products ports.ProductRepository,
	portRepo ports.PortRepository,
	coordinator *consistency.Coordinator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:      orders,
		clients:     clients,
		products:    products,
		ports:       portRepo,
		coordinator: coordinator,
	}
}

// Handle returns the PENDING order as inserted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	var created *order.Order

	plan := consistency.Plan{
		Operation: "create_order",
		Checks: []consistency.Step{
			{Name: "client_exists", Run: func(ctx context.Context) error {
				_, err := h.clients.Get(ctx, cmd.ClientID())
				return err
			}},
			{Name: "delivery_port_exists", Run: func(ctx context.Context) error {
				_, err := h.ports.GetByName(ctx, cmd.DeliveryPort())
				return err
			}},
			{Name: "stock_available", Run: func(ctx context.Context) error {
				weight, err := h.checkStock(ctx, lines)
				if err != nil {
					return err
				}
				if cmd.TotalWeightKg() != nil {
					weight = *cmd.TotalWeightKg()
				}
				created, err = order.NewOrder(
					cmd.ClientID(),
					cmd.Priority(),
					cmd.DeliveryPort(),
					lines,
					cmd.BoxCount(),
					weight,
					time.Now().UTC(),
				)
				return err
			}},
		},
		Primary: consistency.Step{Name: "insert_order", Run: func(ctx context.Context) error {
			return h.orders.Add(ctx, created)
		}},
	}

	for _, line := range lines {
		plan.Secondaries = append(plan.Secondaries, consistency.Step{
			Name: "decrement_stock",
			Run: func(ctx context.Context) error {
				return h.products.DecrementStock(ctx, line.ProductID(), line.Quantity())
			},
		})
	}
	plan.Secondaries = append(plan.Secondaries, consistency.Step{
		Name: "append_client_history",
		Run: func(ctx context.Context) error {
			return h.clients.AppendOrder(ctx, cmd.ClientID(), created.ID())
		},
	})

	if _, err := h.coordinator.Execute(ctx, plan); err != nil {
		return nil, err
	}

	return created, nil
}

// checkStock verifies every line against a fresh read and returns the weight
// of the whole order.
func (h CreateOrderCommandHandler) checkStock(ctx context.Context, lines []order.Line) (float64, error) {
	var weight float64
	for _, line := range lines {
		p, err := h.products.Get(ctx, line.ProductID())
		if err != nil {
			return 0, err
		}
		if err = p.CheckStock(line.Quantity()); err != nil {
			return 0, err
		}
		weight += p.WeightKg() * float64(line.Quantity())
	}
	return weight, nil
}
