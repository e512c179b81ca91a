package seaplane

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"

	"github.com/looplab/fsm"
)

var (
	// ErrSeaplaneInFlight is the cause reported when a flying seaplane is asked
	// to change its status or take off again.
	ErrSeaplaneInFlight = errors.New("seaplane is in flight")

	// ErrSeaplaneInMaintenance is the cause reported when a seaplane under
	// maintenance is assigned a flight.
	ErrSeaplaneInMaintenance = errors.New("seaplane is under maintenance")

	errTakeOffThroughFlightAssignment = errors.New("a seaplane takes off only through flight assignment")
)

// Status represents the operational state of a seaplane.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Available
	AtPort
	Maintenance
	InFlight
)

const (
	eventMakeAvailable    = "make_available"
	eventDock             = "dock"
	eventStartMaintenance = "start_maintenance"
	eventTakeOff          = "take_off"
	eventLand             = "land"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Available:   "AVAILABLE",
		AtPort:      "AT_PORT",
		Maintenance: "MAINTENANCE",
		InFlight:    "IN_FLIGHT",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "AVAILABLE",
		AtPort:      "AT_PORT",
		Maintenance: "MAINTENANCE",
		InFlight:    "IN_FLIGHT",
	}
}

// ParseStatus accepts any letter case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a seaplane status", s))
}

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

// IsGround reports whether the seaplane is on the water or in the hangar.
func (s Status) IsGround() bool {
	return s == Available || s == AtPort || s == Maintenance
}

func newMachine(current Status) *fsm.FSM {
	available, atPort := Available.String(), AtPort.String()
	maintenance, inFlight := Maintenance.String(), InFlight.String()
	ground := []string{available, atPort, maintenance}

	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventMakeAvailable, Src: ground, Dst: available},
			{Name: eventDock, Src: ground, Dst: atPort},
			{Name: eventStartMaintenance, Src: ground, Dst: maintenance},
			{Name: eventTakeOff, Src: []string{available, atPort}, Dst: inFlight},
			{Name: eventLand, Src: []string{inFlight}, Dst: atPort},
		},
		fsm.Callbacks{},
	)
}

func (s Status) fire(event string, target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	machine := newMachine(s)
	err := machine.Event(context.Background(), event)

	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		var cause error = err
		switch s { //nolint:exhaustive // other statuses keep the fsm error
		case InFlight:
			cause = ErrSeaplaneInFlight
		case Maintenance:
			cause = ErrSeaplaneInMaintenance
		}
		return Unknown, errs.NewInvalidTransitionErrorWithCause("seaplane", s.String(), target.String(), cause)
	}

	return ParseStatus(machine.Current())
}

// ChangeTo moves between ground statuses. IN_FLIGHT is accepted only as a
// no-op on a seaplane already flying.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	switch target { //nolint:exhaustive // Unknown rejected by Validate above
	case Available:
		return s.fire(eventMakeAvailable, target)
	case AtPort:
		return s.fire(eventDock, target)
	case Maintenance:
		return s.fire(eventStartMaintenance, target)
	case InFlight:
		if s == InFlight {
			return s, nil
		}
		if err := s.Validate(); err != nil {
			return Unknown, err
		}
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"seaplane", s.String(), target.String(), errTakeOffThroughFlightAssignment,
		)
	}

	return Unknown, errs.NewValueIsInvalidError("status")
}

// TakeOff transitions AVAILABLE or AT_PORT to IN_FLIGHT.
func (s Status) TakeOff() (Status, error) {
	return s.fire(eventTakeOff, InFlight)
}

// Land transitions IN_FLIGHT to AT_PORT.
func (s Status) Land() (Status, error) {
	return s.fire(eventLand, AtPort)
}
