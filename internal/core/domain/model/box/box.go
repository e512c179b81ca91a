package box

import (
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

type Box struct {
	id       kernel.ID
	orderID  kernel.ID
	clientID kernel.ID
	number   int
	status   Status
	content  string

	isConstructed bool
}

// NewBox creates a box for an order. An Unknown status defaults to PENDING.
func NewBox(orderID, clientID kernel.ID, number int, status Status, content string) (*Box, error) {
	if status == Unknown {
		status = Pending
	}
	return RestoreBox(kernel.NewID(), orderID, clientID, number, status, content)
}

func RestoreBox(id, orderID, clientID kernel.ID, number int, status Status, content string) (*Box, error) {
	b := &Box{
		id:            id,
		orderID:       orderID,
		clientID:      clientID,
		status:        status,
		content:       strings.TrimSpace(content),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		clientID.Validate(),
		b.setNumber(number),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}
	return nil
}

func (b *Box) ID() kernel.ID {
	return b.id
}

func (b *Box) OrderID() kernel.ID {
	return b.orderID
}

func (b *Box) ClientID() kernel.ID {
	return b.clientID
}

func (b *Box) Number() int {
	return b.number
}

func (b *Box) Status() Status {
	return b.status
}

func (b *Box) Content() string {
	return b.content
}

// Update changes the mutable fields. Nil arguments are left untouched and a
// rejected update changes nothing.
func (b *Box) Update(number *int, status *Status, content *string) error {
	next := *b

	if number != nil {
		if err := next.setNumber(*number); err != nil {
			return err
		}
	}
	if status != nil {
		advanced, err := next.status.AdvanceTo(*status)
		if err != nil {
			return err
		}
		next.status = advanced
	}
	if content != nil {
		next.content = strings.TrimSpace(*content)
	}

	*b = next
	return nil
}

func (b *Box) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d must be positive", number))
	}
	b.number = number
	return nil
}
