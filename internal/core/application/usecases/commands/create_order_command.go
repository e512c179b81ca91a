package commands

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one requested product as received from a caller.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    clientID, "express", "Puerto Ayora",
//	    []OrderLineInput{{ProductID: productID, Quantity: 2}},
//	    1, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	clientID      kernel.ID
	priority      string
	deliveryPort  string
	lines         []order.Line
	boxCount      int
	totalWeightKg *float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses every identifier and quantity. totalWeightKg
// may be nil, in which case the handler computes it from product weights.
func NewCreateOrderCommand(
	clientID string,
	priority string,
	deliveryPort string,
	lines []OrderLineInput,
	boxCount int,
	totalWeightKg *float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		priority:      priority,
		totalWeightKg: totalWeightKg,
		guard:         guard.NewConstructorGuard(),
	}

	var portErr error
	cmd.deliveryPort, portErr = requireText("deliveryPort", deliveryPort)

	if err := errors.Join(
		cmd.setClientID(clientID),
		portErr,
		cmd.setLines(lines),
		cmd.setBoxCount(boxCount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() kernel.ID {
	return c.clientID
}

func (c CreateOrderCommand) Priority() string {
	return c.priority
}

func (c CreateOrderCommand) DeliveryPort() string {
	return c.deliveryPort
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c CreateOrderCommand) BoxCount() int {
	return c.boxCount
}

// TotalWeightKg is nil when the weight must be computed.
func (c CreateOrderCommand) TotalWeightKg() *float64 {
	return c.totalWeightKg
}

func (c *CreateOrderCommand) setClientID(id string) error {
	parsed, err := kernel.ParseID("clientId", id)
	if err != nil {
		return err
	}

	c.clientID = parsed
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []OrderLineInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	lines := make([]order.Line, 0, len(inputs))
	for i, input := range inputs {
		productID, err := kernel.ParseID(fmt.Sprintf("products[%d].productId", i), input.ProductID)
		if err != nil {
			return err
		}
		line, err := order.NewLine(productID, input.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setBoxCount(count int) error {
	if count < 1 {
		return errs.NewValueIsOutOfRangeError("boxCount", count, 1, "∞")
	}

	c.boxCount = count
	return nil
}
