package commands

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/seaplane"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var (
	ErrUpdateSeaplaneCommandIsNotConstructed = errors.New(
		"UpdateSeaplaneCommand must be created via NewUpdateSeaplaneCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)

// UpdateSeaplaneCommand is a partial update. Nil fields are left untouched.
type UpdateSeaplaneCommand struct {
	id                string
	model             *string
	boxCapacity       *int
	fuelConsumptionKm *float64
	cruiseSpeedKmh    *float64
	status            *seaplane.Status

	guard guard.ConstructorGuard
}

func NewUpdateSeaplaneCommand(
	id string,
	model *string,
	boxCapacity *int,
	fuelConsumptionKm *float64,
	cruiseSpeedKmh *float64,
	status *string,
) (UpdateSeaplaneCommand, error) {
	cmd := UpdateSeaplaneCommand{
		model:             model,
		boxCapacity:       boxCapacity,
		fuelConsumptionKm: fuelConsumptionKm,
		cruiseSpeedKmh:    cruiseSpeedKmh,
		guard:             guard.NewConstructorGuard(),
	}

	var idErr error
	cmd.id, idErr = requireText("id", id)

	if err := errors.Join(idErr, cmd.setStatus(status)); err != nil {
		return UpdateSeaplaneCommand{}, err
	}

	if model == nil && boxCapacity == nil && fuelConsumptionKm == nil && cruiseSpeedKmh == nil && status == nil {
		return UpdateSeaplaneCommand{}, errs.NewValueIsRequiredErrorWithCause("fields", ErrNothingToUpdate)
	}

	return cmd, nil
}

func (c UpdateSeaplaneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSeaplaneCommandIsNotConstructed)
}

func (c UpdateSeaplaneCommand) ID() string {
	return c.id
}

func (c UpdateSeaplaneCommand) Model() *string {
	return c.model
}

func (c UpdateSeaplaneCommand) BoxCapacity() *int {
	return c.boxCapacity
}

func (c UpdateSeaplaneCommand) FuelConsumptionKm() *float64 {
	return c.fuelConsumptionKm
}

func (c UpdateSeaplaneCommand) CruiseSpeedKmh() *float64 {
	return c.cruiseSpeedKmh
}

func (c UpdateSeaplaneCommand) Status() *seaplane.Status {
	return c.status
}

func (c *UpdateSeaplaneCommand) setStatus(status *string) error {
	if status == nil || strings.TrimSpace(*status) == "" {
		return nil
	}

	parsed, err := seaplane.ParseStatus(*status)
	if err != nil {
		return err
	}

	c.status = &parsed
	return nil
}
