package order

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when validating a zero-value Line.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("order line must be created via NewLine")

// Line is one ordered product with its quantity. It is a value object.
type Line struct {
	productID kernel.ID
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLine validates the product reference and a positive quantity.
//
// Example:
//
//	line, err := order.NewLine(productID, 3)
func NewLine(productID kernel.ID, quantity int) (Line, error) {
	l := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		productID.Validate(),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}
	l.productID = productID

	return l, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() kernel.ID {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d must be positive", quantity))
	}
	l.quantity = quantity
	return nil
}
