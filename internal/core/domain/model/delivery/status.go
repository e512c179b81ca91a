package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"

	"github.com/looplab/fsm"
)

// Status is the progress of a delivery flight.
type Status int

const (
	Unknown Status = iota
	Scheduled
	InProgress
	Delayed
	Completed
)

const (
	eventStart    = "start"
	eventDelay    = "delay"
	eventComplete = "complete"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Scheduled:  "SCHEDULED",
		InProgress: "IN_PROGRESS",
		Delayed:    "DELAYED",
		Completed:  "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "SCHEDULED",
		InProgress: "IN_PROGRESS",
		Delayed:    "DELAYED",
		Completed:  "COMPLETED",
	}
}

func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
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

func newMachine(current Status) *fsm.FSM {
	scheduled, inProgress := Scheduled.String(), InProgress.String()
	delayed, completed := Delayed.String(), Completed.String()

	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventStart, Src: []string{scheduled, delayed}, Dst: inProgress},
			{Name: eventDelay, Src: []string{scheduled, inProgress, delayed}, Dst: delayed},
			{Name: eventComplete, Src: []string{inProgress}, Dst: completed},
		},
		fsm.Callbacks{},
	)
}

// TransitionTo returns target when the machine allows it from s. SCHEDULED is
// never a target and COMPLETED is final.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return Unknown, err
	}

	var event string
	switch target { //nolint:exhaustive // Unknown rejected above
	case InProgress:
		event = eventStart
	case Delayed:
		event = eventDelay
	case Completed:
		event = eventComplete
	default:
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"delivery", s.String(), target.String(), fmt.Errorf("a delivery is scheduled only once"),
		)
	}

	machine := newMachine(s)
	err := machine.Event(context.Background(), event)

	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return Unknown, errs.NewInvalidTransitionErrorWithCause("delivery", s.String(), target.String(), err)
	}

	return ParseStatus(machine.Current())
}
