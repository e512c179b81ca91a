// Package product models the catalog items orders draw stock from.
package product

import (
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product keeps stockAvailable ≥ 0. The business store enforces the same bound
// on concurrent decrements.
type Product struct {
	id             kernel.ID
	name           string
	description    string
	stockAvailable int
	weightKg       float64
	unitPrice      float64

	isConstructed bool
}

func NewProduct(name, description string, stockAvailable int, weightKg, unitPrice float64) (*Product, error) {
	return RestoreProduct(kernel.NewID(), name, description, stockAvailable, weightKg, unitPrice)
}

func RestoreProduct(
	id kernel.ID,
	name, description string,
	stockAvailable int,
	weightKg, unitPrice float64,
) (*Product, error) {
	p := &Product{
		id:            id,
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		p.setName(name),
		p.setStockAvailable(stockAvailable),
		p.setWeightKg(weightKg),
		p.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) StockAvailable() int {
	return p.stockAvailable
}

func (p *Product) WeightKg() float64 {
	return p.weightKg
}

func (p *Product) UnitPrice() float64 {
	return p.unitPrice
}

// CheckStock fails with a validation error when quantity exceeds the stock.
func (p *Product) CheckStock(quantity int) error {
	if quantity > p.stockAvailable {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, p.stockAvailable,
			fmt.Errorf("not enough stock for product %s", p.id),
		)
	}
	return nil
}

// Update applies the non-nil fields. A rejected update changes nothing.
func (p *Product) Update(name, description *string, stockAvailable *int, weightKg, unitPrice *float64) error {
	next := *p

	var errList []error
	if name != nil {
		errList = append(errList, next.setName(*name))
	}
	if stockAvailable != nil {
		errList = append(errList, next.setStockAvailable(*stockAvailable))
	}
	if weightKg != nil {
		errList = append(errList, next.setWeightKg(*weightKg))
	}
	if unitPrice != nil {
		errList = append(errList, next.setUnitPrice(*unitPrice))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	if description != nil {
		next.description = strings.TrimSpace(*description)
	}

	*p = next
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStockAvailable(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockAvailable", fmt.Errorf("%d must not be negative", stock))
	}
	p.stockAvailable = stock
	return nil
}

func (p *Product) setWeightKg(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v must be positive", weight))
	}
	p.weightKg = weight
	return nil
}

func (p *Product) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v must not be negative", price))
	}
	p.unitPrice = price
	return nil
}
