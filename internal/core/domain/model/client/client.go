// Package client models the researchers and institutions ordering supplies.
package client

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

	validate = validator.New()
)

// Client owns an append-only history of the orders it placed.
type Client struct {
	id           kernel.ID
	name         string
	clientType   string
	specialty    string
	study        string
	email        string
	orderHistory []kernel.ID

	isConstructed bool
}

func NewClient(name, clientType, specialty, study, email string) (*Client, error) {
	return RestoreClient(kernel.NewID(), name, clientType, specialty, study, email, nil)
}

func RestoreClient(
	id kernel.ID,
	name, clientType, specialty, study, email string,
	orderHistory []kernel.ID,
) (*Client, error) {
	c := &Client{
		id:            id,
		clientType:    strings.TrimSpace(clientType),
		specialty:     strings.TrimSpace(specialty),
		study:         strings.TrimSpace(study),
		orderHistory:  append([]kernel.ID(nil), orderHistory...),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.ID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Type() string {
	return c.clientType
}

func (c *Client) Specialty() string {
	return c.specialty
}

func (c *Client) Study() string {
	return c.study
}

func (c *Client) Email() string {
	return c.email
}

// OrderHistory returns a copy of the placed orders, oldest first.
func (c *Client) OrderHistory() []kernel.ID {
	return append([]kernel.ID(nil), c.orderHistory...)
}

// Update applies the non-nil fields. A rejected update changes nothing.
func (c *Client) Update(name, clientType, specialty, study, email *string) error {
	next := *c

	var errList []error
	if name != nil {
		errList = append(errList, next.setName(*name))
	}
	if email != nil {
		errList = append(errList, next.setEmail(*email))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if clientType != nil {
		next.clientType = strings.TrimSpace(*clientType)
	}
	if specialty != nil {
		next.specialty = strings.TrimSpace(*specialty)
	}
	if study != nil {
		next.study = strings.TrimSpace(*study)
	}

	*c = next
	return nil
}

// AppendOrder records a placed order at the end of the history.
func (c *Client) AppendOrder(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderHistory = append(c.orderHistory, orderID)
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "omitempty,email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}
