package commands

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var ErrCreateBoxCommandIsNotConstructed = errors.New(
	"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
)

// CreateBoxCommand adds a box to an order. The client is optional and taken
// from the order when absent.
type CreateBoxCommand struct {
	orderID  kernel.ID
	clientID *kernel.ID
	number   int
	status   box.Status
	content  string

	guard guard.ConstructorGuard
}

func NewCreateBoxCommand(
	orderID string,
	clientID *string,
	number int,
	status *string,
	content string,
) (CreateBoxCommand, error) {
	cmd := CreateBoxCommand{
		number:  number,
		content: content,
		status:  box.Pending,
		guard:   guard.NewConstructorGuard(),
	}

	var orderErr, clientErr error
	cmd.orderID, orderErr = kernel.ParseID("orderId", orderID)
	cmd.clientID, clientErr = kernel.ParseOptionalID("clientId", clientID)

	if err := errors.Join(orderErr, clientErr, cmd.setStatus(status)); err != nil {
		return CreateBoxCommand{}, err
	}

	return cmd, nil
}

func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

func (c CreateBoxCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateBoxCommand) ClientID() *kernel.ID {
	return c.clientID
}

func (c CreateBoxCommand) Number() int {
	return c.number
}

func (c CreateBoxCommand) Status() box.Status {
	return c.status
}

func (c CreateBoxCommand) Content() string {
	return c.content
}

func (c *CreateBoxCommand) setStatus(status *string) error {
	if status == nil || strings.TrimSpace(*status) == "" {
		return nil
	}

	parsed, err := box.ParseStatus(*status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
