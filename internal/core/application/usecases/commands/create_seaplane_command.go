package commands

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrCreateSeaplaneCommandIsNotConstructed = errors.New(
	"CreateSeaplaneCommand must be created via NewCreateSeaplaneCommand constructor",
)

// CreateSeaplaneCommand registers a seaplane and stations it at a port. When
// no port is given the seaplane is stationed at the warehouse.
//
// Example:
//
//	capacity, fuel, speed := 12, 1.8, 220.0
//	cmd, err := NewCreateSeaplaneCommand("HC-GPS", "Cessna 208", &capacity, &fuel, &speed, "", nil)
type CreateSeaplaneCommand struct {
	id                string
	model             string
	boxCapacity       int
	fuelConsumptionKm float64
	cruiseSpeedKmh    float64
	status            seaplane.Status
	portID            *int

	guard guard.ConstructorGuard
}

// NewCreateSeaplaneCommand validates the registration request. Capacity, fuel
// consumption and speed are required. A blank status means AVAILABLE.
func NewCreateSeaplaneCommand(
	id string,
	model string,
	boxCapacity *int,
	fuelConsumptionKm *float64,
	cruiseSpeedKmh *float64,
	status string,
	portID *int,
) (CreateSeaplaneCommand, error) {
	cmd := CreateSeaplaneCommand{
		id:     strings.TrimSpace(id),
		model:  strings.TrimSpace(model),
		portID: portID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired(boxCapacity, fuelConsumptionKm, cruiseSpeedKmh),
		cmd.setStatus(status),
	); err != nil {
		return CreateSeaplaneCommand{}, err
	}

	return cmd, nil
}

func (c CreateSeaplaneCommand) Validate() error {
	return c.guard.Validate(ErrCreateSeaplaneCommandIsNotConstructed)
}

func (c CreateSeaplaneCommand) ID() string {
	return c.id
}

func (c CreateSeaplaneCommand) Model() string {
	return c.model
}

func (c CreateSeaplaneCommand) BoxCapacity() int {
	return c.boxCapacity
}

func (c CreateSeaplaneCommand) FuelConsumptionKm() float64 {
	return c.fuelConsumptionKm
}

func (c CreateSeaplaneCommand) CruiseSpeedKmh() float64 {
	return c.cruiseSpeedKmh
}

func (c CreateSeaplaneCommand) Status() seaplane.Status {
	return c.status
}

// PortID is nil when the seaplane goes to the warehouse.
func (c CreateSeaplaneCommand) PortID() *int {
	return c.portID
}

func (c *CreateSeaplaneCommand) setRequired(boxCapacity *int, fuel, speed *float64) error {
	var errList []error
	if boxCapacity == nil {
		errList = append(errList, errs.NewValueIsRequiredError("boxCapacity"))
	} else {
		c.boxCapacity = *boxCapacity
	}
	if fuel == nil {
		errList = append(errList, errs.NewValueIsRequiredError("fuelConsumptionKm"))
	} else {
		c.fuelConsumptionKm = *fuel
	}
	if speed == nil {
		errList = append(errList, errs.NewValueIsRequiredError("cruiseSpeedKmh"))
	} else {
		c.cruiseSpeedKmh = *speed
	}
	return errors.Join(errList...)
}

func (c *CreateSeaplaneCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		c.status = seaplane.Available
		return nil
	}

	parsed, err := seaplane.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
