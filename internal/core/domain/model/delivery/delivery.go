// Package delivery models the flights that carry an order's boxes along a
// planned route of ports.
//
//	SCHEDULED ──start──> IN_PROGRESS ──complete──> COMPLETED
//	    │                  │    ▲
//	    └──delay──> DELAYED ◄┘   │
//	                   └──start──┘
//
// A DELAYED delivery always carries a reason. Entering IN_PROGRESS stamps the
// departure date once; COMPLETED stamps the arrival date and moves the current
// port to the destination.
package delivery

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// MinRouteLength is the smallest route: a departure and a destination.
const MinRouteLength = 2

type Delivery struct {
	id                 kernel.ID
	orderID            kernel.ID
	seaplaneID         string
	status             Status
	plannedRoute       []string
	currentPort        string
	destinationPort    string
	transportedBoxes   []kernel.ID
	totalDistanceKm    float64
	estimatedFuelL     float64
	scheduledDeparture *time.Time
	departureDate      *time.Time
	arrivalDate        *time.Time
	delayReason        string

	isConstructed bool
}

// Plan is the computed part of a delivery.
type Plan struct {
	Route          []string
	DistanceKm     float64
	EstimatedFuelL float64
	Boxes          []kernel.ID
	ScheduledFor   *time.Time
}

// NewDelivery schedules a delivery. The current port starts at the first
// port of the route and the destination is the last one.
func NewDelivery(orderID kernel.ID, seaplaneID string, plan Plan) (*Delivery, error) {
	d := &Delivery{
		id:                 kernel.NewID(),
		orderID:            orderID,
		status:             Scheduled,
		totalDistanceKm:    plan.DistanceKm,
		estimatedFuelL:     plan.EstimatedFuelL,
		scheduledDeparture: plan.ScheduledFor,
		isConstructed:      true,
	}

	if err := errors.Join(
		orderID.Validate(),
		d.setSeaplaneID(seaplaneID),
		d.setRoute(plan.Route),
		d.setBoxes(plan.Boxes),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery read from the business store.
func RestoreDelivery(
	id kernel.ID,
	orderID kernel.ID,
	seaplaneID string,
	status Status,
	plan Plan,
	currentPort string,
	departureDate *time.Time,
	arrivalDate *time.Time,
	delayReason string,
) (*Delivery, error) {
	d := &Delivery{
		id:                 id,
		orderID:            orderID,
		status:             status,
		totalDistanceKm:    plan.DistanceKm,
		estimatedFuelL:     plan.EstimatedFuelL,
		scheduledDeparture: plan.ScheduledFor,
		departureDate:      departureDate,
		arrivalDate:        arrivalDate,
		delayReason:        delayReason,
		isConstructed:      true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		d.setSeaplaneID(seaplaneID),
		d.setRoute(plan.Route),
		d.setBoxes(plan.Boxes),
	); err != nil {
		return nil, err
	}

	if currentPort != "" {
		d.currentPort = currentPort
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.ID {
	return d.id
}

func (d *Delivery) OrderID() kernel.ID {
	return d.orderID
}

func (d *Delivery) SeaplaneID() string {
	return d.seaplaneID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) PlannedRoute() []string {
	return slices.Clone(d.plannedRoute)
}

func (d *Delivery) CurrentPort() string {
	return d.currentPort
}

func (d *Delivery) DestinationPort() string {
	return d.destinationPort
}

func (d *Delivery) TransportedBoxes() []kernel.ID {
	return slices.Clone(d.transportedBoxes)
}

func (d *Delivery) TotalDistanceKm() float64 {
	return d.totalDistanceKm
}

func (d *Delivery) EstimatedFuelL() float64 {
	return d.estimatedFuelL
}

func (d *Delivery) ScheduledDeparture() *time.Time {
	return d.scheduledDeparture
}

func (d *Delivery) DepartureDate() *time.Time {
	return d.departureDate
}

func (d *Delivery) ArrivalDate() *time.Time {
	return d.arrivalDate
}

func (d *Delivery) DelayReason() string {
	return d.delayReason
}

// ChangeStatus moves the delivery to target at time at.
//
// delayReason is required for DELAYED. currentPort, when given, must be a
// port of the planned route. A rejected change leaves the delivery untouched.
func (d *Delivery) ChangeStatus(target Status, delayReason string, currentPort *string, at time.Time) error {
	next := *d

	if currentPort != nil {
		port := strings.TrimSpace(*currentPort)
		if !slices.Contains(d.plannedRoute, port) {
			return errs.NewValueIsInvalidErrorWithCause("currentPort",
				fmt.Errorf("%q is not on the planned route", port))
		}
		next.currentPort = port
	}

	if target == Delayed {
		delayReason = strings.TrimSpace(delayReason)
		if delayReason == "" {
			return errs.NewValueIsRequiredError("delayReason")
		}
	}

	status, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	next.status = status

	switch status { //nolint:exhaustive // SCHEDULED is never reached here
	case Delayed:
		next.delayReason = delayReason
	case InProgress:
		next.delayReason = ""
		if next.departureDate == nil {
			next.departureDate = &at
		}
	case Completed:
		next.arrivalDate = &at
		next.currentPort = d.destinationPort
	}

	*d = next
	return nil
}

// IsActive reports whether the seaplane is currently flying this delivery.
func (d *Delivery) IsActive() bool {
	return d.status == InProgress
}

func (d *Delivery) setSeaplaneID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("seaplaneId")
	}
	d.seaplaneID = id
	return nil
}

func (d *Delivery) setRoute(route []string) error {
	if len(route) < MinRouteLength {
		return errs.NewValueIsInvalidErrorWithCause("route",
			fmt.Errorf("a route needs at least %d ports, got %d", MinRouteLength, len(route)))
	}
	for i, port := range route {
		if strings.TrimSpace(port) == "" {
			return errs.NewValueIsRequiredErrorWithCause("route", fmt.Errorf("port %d is blank", i))
		}
	}

	d.plannedRoute = slices.Clone(route)
	d.currentPort = route[0]
	d.destinationPort = route[len(route)-1]
	return nil
}

func (d *Delivery) setBoxes(boxes []kernel.ID) error {
	for _, id := range boxes {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	d.transportedBoxes = slices.Clone(boxes)
	return nil
}
