package locker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"

	"github.com/looplab/fsm"
)

// ErrLockerInUse is the cause reported when a reserved or occupied locker is
// asked to change status directly.
var ErrLockerInUse = errors.New("locker in use")

// Status represents the occupancy state of a locker.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Empty
	Reserved
	Occupied
	Maintenance
)

const (
	eventMarkEmpty        = "mark_empty"
	eventStartMaintenance = "start_maintenance"
	eventReserve          = "reserve"
	eventOccupy           = "occupy"
	eventRelease          = "release"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Empty:       "EMPTY",
		Reserved:    "RESERVED",
		Occupied:    "OCCUPIED",
		Maintenance: "MAINTENANCE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Empty:       "EMPTY",
		Reserved:    "RESERVED",
		Occupied:    "OCCUPIED",
		Maintenance: "MAINTENANCE",
	}
}

// ParseStatus accepts any letter case, since the business store persists
// statuses lowercase and callers send them uppercase.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a locker status", s))
}

// Validate checks if the Status value is one of the four locker states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// InUse reports whether the locker holds or awaits a box.
func (s Status) InUse() bool {
	return s == Reserved || s == Occupied
}

func newMachine(current Status) *fsm.FSM {
	empty, reserved := Empty.String(), Reserved.String()
	occupied, maintenance := Occupied.String(), Maintenance.String()

	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventMarkEmpty, Src: []string{empty, maintenance}, Dst: empty},
			{Name: eventStartMaintenance, Src: []string{empty, maintenance}, Dst: maintenance},
			{Name: eventReserve, Src: []string{empty}, Dst: reserved},
			{Name: eventOccupy, Src: []string{reserved}, Dst: occupied},
			{Name: eventRelease, Src: []string{occupied}, Dst: empty},
		},
		fsm.Callbacks{},
	)
}

// fire runs event against a machine positioned at s. Self transitions are
// accepted; looplab/fsm reports them as NoTransitionError.
func (s Status) fire(event string, target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	machine := newMachine(s)
	err := machine.Event(context.Background(), event)

	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		var cause error = err
		if s.InUse() {
			cause = ErrLockerInUse
		}
		return Unknown, errs.NewInvalidTransitionErrorWithCause("locker", s.String(), target.String(), cause)
	}

	return ParseStatus(machine.Current())
}

// MarkEmpty transitions EMPTY or MAINTENANCE to EMPTY.
func (s Status) MarkEmpty() (Status, error) {
	return s.fire(eventMarkEmpty, Empty)
}

// StartMaintenance transitions EMPTY or MAINTENANCE to MAINTENANCE.
func (s Status) StartMaintenance() (Status, error) {
	return s.fire(eventStartMaintenance, Maintenance)
}

// Reserve transitions EMPTY to RESERVED.
func (s Status) Reserve() (Status, error) {
	return s.fire(eventReserve, Reserved)
}

// Occupy transitions RESERVED to OCCUPIED.
func (s Status) Occupy() (Status, error) {
	return s.fire(eventOccupy, Occupied)
}

// Release transitions OCCUPIED to EMPTY.
func (s Status) Release() (Status, error) {
	return s.fire(eventRelease, Empty)
}
