package order

import (
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State progression:
//
//	PENDING ──> IN_TRANSIT ──> PARTIALLY_DELIVERED ──> DELIVERED
//	   │             │                                     ▲
//	   └─────────────┴─────────────────────────────────────┘
//	           (steps may be skipped, never undone)
//
// The numeric order of the constants is the progression order, which is what
// makes the monotonic check a comparison.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// InTransit indicates at least one delivery carrying the order departed.
	InTransit

	// PartiallyDelivered indicates some, but not all, boxes reached the client.
	PartiallyDelivered

	// Delivered is the final status. No further transitions are possible.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Pending:            "PENDING",
		InTransit:          "IN_TRANSIT",
		PartiallyDelivered: "PARTIALLY_DELIVERED",
		Delivered:          "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:            "PENDING",
		InTransit:          "IN_TRANSIT",
		PartiallyDelivered: "PARTIALLY_DELIVERED",
		Delivered:          "DELIVERED",
	}
}

// ParseStatus converts a status name in any letter case.
//
// Returns:
//   - the matching Status
//   - a validation error for any other input
//
// Example:
//
//	status, err := order.ParseStatus("in_transit") // InTransit, nil
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: PENDING, IN_TRANSIT, PARTIALLY_DELIVERED, DELIVERED.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AdvanceTo transitions the status to target.
//
// Valid transitions:
//   - any status to itself
//   - any status to a later one in the progression
//
// Invalid transitions:
//   - any regression, e.g. DELIVERED -> IN_TRANSIT
//   - from or to Unknown
//
// Returns:
//   - (target, nil) on valid transition
//   - (Unknown, InvalidTransitionError) on regression
//   - (Unknown, validation error) on invalid statuses
//
// Example:
//
//	next, err := order.Pending.AdvanceTo(order.InTransit)
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target < s {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"order", s.String(), target.String(),
			fmt.Errorf("order status never regresses"),
		)
	}

	return target, nil
}

// StatusesUpTo returns every valid status from PENDING through target, in
// progression order. Writers use it to accept only stored statuses that
// target does not regress.
func StatusesUpTo(target Status) []Status {
	if target.Validate() != nil {
		return nil
	}
	statuses := make([]Status, 0, int(target))
	for s := Pending; s <= target; s++ {
		statuses = append(statuses, s)
	}
	return statuses
}
