package locker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var (
	// ErrLockerIsNotConstructed is returned when a Locker was not created through
	// NewLocker or RestoreLocker.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")

	errOccupyThroughBoxAssignment = errors.New("a locker is occupied only by assigning a box")
	errBoxBelongsToAnotherOrder   = errors.New("box belongs to another order than the reservation")
)

// Locker is a storage compartment at a port. It is the aggregate root of the
// locker lifecycle and keeps its references consistent with its status.
type Locker struct {
	id                kernel.ID
	portID            int
	number            int
	status            Status
	boxID             *kernel.ID
	reservedOrderID   *kernel.ID
	maintenanceReason string
	lastUsed          *time.Time

	isConstructed bool
}

// NewLocker creates an EMPTY locker with the given per-port number.
//
// Example:
//
//	next := maxNumber + 1
//	l, err := locker.NewLocker(portID, next)
func NewLocker(portID int, number int) (*Locker, error) {
	l := &Locker{
		id:            kernel.NewID(),
		status:        Empty,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setPortID(portID),
		l.setNumber(number),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker rebuilds a locker read from storage, checking every invariant
// so that a corrupt document surfaces as an error instead of a bad aggregate.
func RestoreLocker(
	id kernel.ID,
	portID int,
	number int,
	status Status,
	boxID *kernel.ID,
	reservedOrderID *kernel.ID,
	maintenanceReason string,
	lastUsed *time.Time,
) (*Locker, error) {
	l := &Locker{
		id:                id,
		status:            status,
		boxID:             boxID,
		reservedOrderID:   reservedOrderID,
		maintenanceReason: maintenanceReason,
		lastUsed:          lastUsed,
		isConstructed:     true,
	}

	if err := errors.Join(
		id.Validate(),
		l.setPortID(portID),
		l.setNumber(number),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := l.checkInvariants(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

func (l *Locker) ID() kernel.ID {
	return l.id
}

func (l *Locker) PortID() int {
	return l.portID
}

func (l *Locker) Number() int {
	return l.number
}

func (l *Locker) Status() Status {
	return l.status
}

// BoxID returns the stored box, set only while OCCUPIED.
func (l *Locker) BoxID() *kernel.ID {
	return l.boxID
}

// ReservedOrderID returns the awaited order, set only while RESERVED.
func (l *Locker) ReservedOrderID() *kernel.ID {
	return l.reservedOrderID
}

// MaintenanceReason is non-empty only while MAINTENANCE.
func (l *Locker) MaintenanceReason() string {
	return l.maintenanceReason
}

func (l *Locker) LastUsed() *time.Time {
	return l.lastUsed
}

// ChangeStatus applies an operator status change.
//
// Allowed: EMPTY→MAINTENANCE, MAINTENANCE→EMPTY, EMPTY→RESERVED, and the
// EMPTY→EMPTY / MAINTENANCE→MAINTENANCE self transitions. A RESERVED or
// OCCUPIED locker is in use and rejects every change. OCCUPIED is never a
// valid target here.
//
// reason is required for MAINTENANCE and cleared when leaving it.
// reservedOrderID is required for RESERVED.
func (l *Locker) ChangeStatus(target Status, reason string, reservedOrderID *kernel.ID) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if l.status.InUse() {
		return errs.NewInvalidTransitionErrorWithCause("locker", l.status.String(), target.String(), ErrLockerInUse)
	}

	switch target { //nolint:exhaustive // Unknown rejected by Validate above
	case Maintenance:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return errs.NewValueIsRequiredError("maintenanceReason")
		}
		next, err := l.status.StartMaintenance()
		if err != nil {
			return err
		}
		l.status = next
		l.maintenanceReason = reason

	case Empty:
		next, err := l.status.MarkEmpty()
		if err != nil {
			return err
		}
		l.status = next
		l.maintenanceReason = ""

	case Reserved:
		if reservedOrderID == nil {
			return errs.NewValueIsRequiredError("reservedOrderId")
		}
		next, err := l.status.Reserve()
		if err != nil {
			return err
		}
		l.status = next
		l.reservedOrderID = reservedOrderID

	case Occupied:
		return errs.NewInvalidTransitionErrorWithCause(
			"locker", l.status.String(), target.String(), errOccupyThroughBoxAssignment,
		)
	}

	return nil
}

// AssignBox stores a box in a RESERVED locker. The box must belong to the
// reserved order. The reservation is consumed.
func (l *Locker) AssignBox(boxID kernel.ID, boxOrderID kernel.ID) error {
	if err := errors.Join(boxID.Validate(), boxOrderID.Validate()); err != nil {
		return err
	}

	if l.status == Reserved && !l.reservedOrderID.IsEqual(boxOrderID) {
		return errs.NewValueIsInvalidErrorWithCause("boxId", errBoxBelongsToAnotherOrder)
	}

	next, err := l.status.Occupy()
	if err != nil {
		return err
	}

	l.status = next
	l.boxID = &boxID
	l.reservedOrderID = nil
	return nil
}

// Release empties an OCCUPIED locker once its box was collected.
func (l *Locker) Release(at time.Time) error {
	next, err := l.status.Release()
	if err != nil {
		return err
	}

	l.status = next
	l.boxID = nil
	l.lastUsed = &at
	return nil
}

// CheckDeletable succeeds only for EMPTY lockers.
func (l *Locker) CheckDeletable() error {
	if l.status != Empty {
		cause := fmt.Errorf("only an empty locker can be deleted")
		if l.status.InUse() {
			cause = ErrLockerInUse
		}
		return errs.NewInvalidTransitionErrorWithCause("locker", l.status.String(), "DELETED", cause)
	}
	return nil
}

func (l *Locker) checkInvariants() error {
	if (l.status == Occupied) != (l.boxID != nil) {
		return errs.NewValueIsInvalidErrorWithCause("boxId",
			fmt.Errorf("box reference must be set iff status is OCCUPIED (status %s)", l.status))
	}
	if (l.status == Reserved) != (l.reservedOrderID != nil) {
		return errs.NewValueIsInvalidErrorWithCause("reservedOrderId",
			fmt.Errorf("reserved order must be set iff status is RESERVED (status %s)", l.status))
	}
	if (l.status == Maintenance) != (strings.TrimSpace(l.maintenanceReason) != "") {
		return errs.NewValueIsInvalidErrorWithCause("maintenanceReason",
			fmt.Errorf("maintenance reason must be set iff status is MAINTENANCE (status %s)", l.status))
	}
	return nil
}

func (l *Locker) setPortID(portID int) error {
	if portID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("portId", fmt.Errorf("%d is not a port id", portID))
	}
	l.portID = portID
	return nil
}

func (l *Locker) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d must be positive", number))
	}
	l.number = number
	return nil
}
