package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

// DefaultPriority is used when an order is created without a priority.
const DefaultPriority = "normal"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client's purchase shipped in boxes to a delivery port.
// It is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - Must reference a client and at least one product line
//   - Each product appears on a single line
//   - boxCount is at least 1 and boxesDelivered stays within [0, boxCount]
//   - Status only moves forward
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the document identifier
	id kernel.ID

	// clientID references the purchasing client; fixed for life
	clientID kernel.ID

	// orderDate is stamped at creation
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// priority is a free-form label, DefaultPriority when none was given
	priority string

	// deliveryPort is the name of the port the boxes are shipped to
	deliveryPort string

	// lines are the ordered products
	lines []Line

	// boxCount is the number of boxes the order ships in
	boxCount int

	// boxesDelivered counts the boxes that reached the client
	boxesDelivered int

	// totalWeightKg is the shipped weight
	totalWeightKg float64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a PENDING order dated now.
//
// Parameters:
//   - clientID: the purchasing client
//   - priority: free-form label, blank means DefaultPriority
//   - deliveryPort: name of the destination port
//   - lines: ordered products, at least one, no product twice
//   - boxCount: number of boxes, at least 1
//   - totalWeightKg: shipped weight, not negative
//   - now: creation time
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: joined validation errors otherwise
//
// Example:
//
//	line, _ := order.NewLine(productID, 2)
//	o, err := order.NewOrder(clientID, "express", "Puerto Ayora", []order.Line{line}, 1, 4.5, time.Now())
func NewOrder(
	clientID kernel.ID,
	priority string,
	deliveryPort string,
	lines []Line,
	boxCount int,
	totalWeightKg float64,
	now time.Time,
) (*Order, error) {
	return build(kernel.NewID(), clientID, now, Pending, priority, deliveryPort, lines, boxCount, 0, totalWeightKg)
}

// RestoreOrder rebuilds an order read from the business store. Stored values
// are validated the same way as new ones, so a corrupt document is reported
// instead of producing an order that breaks its invariants.
func RestoreOrder(
	id kernel.ID,
	clientID kernel.ID,
	orderDate time.Time,
	status Status,
	priority string,
	deliveryPort string,
	lines []Line,
	boxCount int,
	boxesDelivered int,
	totalWeightKg float64,
) (*Order, error) {
	return build(id, clientID, orderDate, status, priority, deliveryPort, lines, boxCount, boxesDelivered, totalWeightKg)
}

func build(
	id kernel.ID,
	clientID kernel.ID,
	orderDate time.Time,
	status Status,
	priority string,
	deliveryPort string,
	lines []Line,
	boxCount int,
	boxesDelivered int,
	totalWeightKg float64,
) (*Order, error) {
	o := &Order{
		id:            id,
		clientID:      clientID,
		orderDate:     orderDate,
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		status.Validate(),
		o.setPriority(priority),
		o.setDeliveryPort(deliveryPort),
		o.setLines(lines),
		o.setBoxCount(boxCount),
		o.setTotalWeightKg(totalWeightKg),
	); err != nil {
		return nil, err
	}

	if err := o.RecordDeliveredBoxes(boxesDelivered); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) ClientID() kernel.ID {
	return o.clientID
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() string {
	return o.priority
}

func (o *Order) DeliveryPort() string {
	return o.deliveryPort
}

// Lines returns a copy of the ordered products.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) BoxCount() int {
	return o.boxCount
}

func (o *Order) BoxesDelivered() int {
	return o.boxesDelivered
}

func (o *Order) TotalWeightKg() float64 {
	return o.totalWeightKg
}

// AdvanceStatus moves the order forward in its lifecycle.
//
// Returns an InvalidTransitionError on regression and leaves the status
// untouched.
//
// Example:
//
//	if err := o.AdvanceStatus(order.InTransit); err != nil {
//	    return err
//	}
func (o *Order) AdvanceStatus(target Status) error {
	next, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// RecordDeliveredBoxes sets the number of boxes that reached the client.
//
// The bound is checked against this in-memory copy only. Two writers holding
// copies read at different times can both pass the check and the store keeps
// whichever write lands last.
func (o *Order) RecordDeliveredBoxes(delivered int) error {
	if delivered < 0 || delivered > o.boxCount {
		return errs.NewValueIsOutOfRangeError("boxesDelivered", delivered, 0, o.boxCount)
	}
	o.boxesDelivered = delivered
	return nil
}

func (o *Order) setPriority(priority string) error {
	priority = strings.TrimSpace(priority)
	if priority == "" {
		priority = DefaultPriority
	}
	o.priority = priority
	return nil
}

func (o *Order) setDeliveryPort(port string) error {
	port = strings.TrimSpace(port)
	if port == "" {
		return errs.NewValueIsRequiredError("deliveryPort")
	}
	o.deliveryPort = port
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	seen := make(map[kernel.ID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("products",
				fmt.Errorf("product %s is ordered twice", line.ProductID()))
		}
		seen[line.ProductID()] = struct{}{}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setBoxCount(count int) error {
	if count < 1 {
		return errs.NewValueIsInvalidErrorWithCause("boxCount", fmt.Errorf("%d must be at least 1", count))
	}
	o.boxCount = count
	return nil
}

func (o *Order) setTotalWeightKg(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalWeightKg", fmt.Errorf("%v must not be negative", weight))
	}
	o.totalWeightKg = weight
	return nil
}
