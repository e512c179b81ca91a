package box

import (
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"
)

// Status is the progress of a single box.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a box status", s))
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

// AdvanceTo accepts target when it is s or a later status.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if target < s {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"box", s.String(), target.String(), fmt.Errorf("box status never regresses"),
		)
	}
	return target, nil
}
