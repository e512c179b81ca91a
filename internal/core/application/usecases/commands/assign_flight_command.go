package commands

import (
	"errors"
	"fmt"

	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrAssignFlightCommandIsNotConstructed = errors.New(
	"AssignFlightCommand must be created via NewAssignFlightCommand constructor",
)

// AssignFlightCommand sends a grounded seaplane from one port to another.
// Ports are addressed by name.
type AssignFlightCommand struct {
	seaplaneID    string
	departurePort string
	arrivalPort   string

	guard guard.ConstructorGuard
}

func NewAssignFlightCommand(seaplaneID, departurePort, arrivalPort string) (AssignFlightCommand, error) {
	cmd := AssignFlightCommand{
		guard: guard.NewConstructorGuard(),
	}

	var idErr, departureErr, arrivalErr error
	cmd.seaplaneID, idErr = requireText("seaplaneId", seaplaneID)
	cmd.departurePort, departureErr = requireText("departurePort", departurePort)
	cmd.arrivalPort, arrivalErr = requireText("arrivalPort", arrivalPort)
	if err := errors.Join(idErr, departureErr, arrivalErr); err != nil {
		return AssignFlightCommand{}, err
	}

	if cmd.departurePort == cmd.arrivalPort {
		return AssignFlightCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"arrivalPort", fmt.Errorf("flight from %q to itself", cmd.departurePort),
		)
	}

	return cmd, nil
}

func (c AssignFlightCommand) Validate() error {
	return c.guard.Validate(ErrAssignFlightCommandIsNotConstructed)
}

func (c AssignFlightCommand) SeaplaneID() string {
	return c.seaplaneID
}

func (c AssignFlightCommand) DeparturePort() string {
	return c.departurePort
}

func (c AssignFlightCommand) ArrivalPort() string {
	return c.arrivalPort
}
