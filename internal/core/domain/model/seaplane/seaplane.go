package seaplane

import (
	"errors"
	"fmt"
	"strings"

	"galapagos/internal/pkg/errs"
)

var (
	// ErrSeaplaneIsNotConstructed is returned when a Seaplane was not created
	// through NewSeaplane or RestoreSeaplane.
	ErrSeaplaneIsNotConstructed = errors.New("Seaplane must be created via NewSeaplane constructor")

	errNewSeaplaneIsStationed = errors.New("a new seaplane is stationed and cannot start IN_FLIGHT")
)

// Seaplane is the aggregate root of the fleet. The id is the registration
// (e.g. "HB-LSD") chosen by the operator.
type Seaplane struct {
	id                string
	model             string
	boxCapacity       int
	fuelConsumptionKm float64
	cruiseSpeedKmh    float64
	status            Status

	isConstructed bool
}

// NewSeaplane registers a seaplane about to be stationed at a port. The
// initial status is supplied by the operator but may not be IN_FLIGHT.
func NewSeaplane(
	id string,
	model string,
	boxCapacity int,
	fuelConsumptionKm float64,
	cruiseSpeedKmh float64,
	status Status,
) (*Seaplane, error) {
	if status == InFlight {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", errNewSeaplaneIsStationed)
	}
	return RestoreSeaplane(id, model, boxCapacity, fuelConsumptionKm, cruiseSpeedKmh, status)
}

// RestoreSeaplane rebuilds a seaplane read from the topology store.
func RestoreSeaplane(
	id string,
	model string,
	boxCapacity int,
	fuelConsumptionKm float64,
	cruiseSpeedKmh float64,
	status Status,
) (*Seaplane, error) {
	s := &Seaplane{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setModel(model),
		s.setBoxCapacity(boxCapacity),
		s.setFuelConsumptionKm(fuelConsumptionKm),
		s.setCruiseSpeedKmh(cruiseSpeedKmh),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = status

	return s, nil
}

func (s *Seaplane) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSeaplaneIsNotConstructed
	}
	return nil
}

func (s *Seaplane) ID() string {
	return s.id
}

func (s *Seaplane) Model() string {
	return s.model
}

func (s *Seaplane) BoxCapacity() int {
	return s.boxCapacity
}

// FuelConsumptionKm is the fuel burnt per kilometre, in litres.
func (s *Seaplane) FuelConsumptionKm() float64 {
	return s.fuelConsumptionKm
}

func (s *Seaplane) CruiseSpeedKmh() float64 {
	return s.cruiseSpeedKmh
}

func (s *Seaplane) Status() Status {
	return s.status
}

// Update applies a partial change. Nil fields are left untouched. All values
// are validated before anything is mutated, so a rejected update leaves the
// seaplane as it was.
//
// While IN_FLIGHT every field but status may change; status may only be
// restated as IN_FLIGHT.
func (s *Seaplane) Update(
	model *string,
	boxCapacity *int,
	fuelConsumptionKm *float64,
	cruiseSpeedKmh *float64,
	status *Status,
) error {
	next := *s

	var errList []error
	if model != nil {
		errList = append(errList, next.setModel(*model))
	}
	if boxCapacity != nil {
		errList = append(errList, next.setBoxCapacity(*boxCapacity))
	}
	if fuelConsumptionKm != nil {
		errList = append(errList, next.setFuelConsumptionKm(*fuelConsumptionKm))
	}
	if cruiseSpeedKmh != nil {
		errList = append(errList, next.setCruiseSpeedKmh(*cruiseSpeedKmh))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if status != nil {
		changed, err := next.status.ChangeTo(*status)
		if err != nil {
			return err
		}
		next.status = changed
	}

	*s = next
	return nil
}

// TakeOff starts a flight. MAINTENANCE and IN_FLIGHT seaplanes are refused.
func (s *Seaplane) TakeOff() error {
	next, err := s.status.TakeOff()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// Land ends the current flight AT_PORT.
func (s *Seaplane) Land() error {
	next, err := s.status.Land()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// EstimateFuel returns the litres needed to fly distanceKm.
func (s *Seaplane) EstimateFuel(distanceKm float64) float64 {
	return distanceKm * s.fuelConsumptionKm
}

// CanCarry reports whether boxes fit in the hold.
func (s *Seaplane) CanCarry(boxes int) bool {
	return boxes <= s.boxCapacity
}

func (s *Seaplane) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

func (s *Seaplane) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	s.model = model
	return nil
}

func (s *Seaplane) setBoxCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("boxCapacity", fmt.Errorf("%d must be positive", capacity))
	}
	s.boxCapacity = capacity
	return nil
}

func (s *Seaplane) setFuelConsumptionKm(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fuelConsumptionKm", fmt.Errorf("%v must be positive", rate))
	}
	s.fuelConsumptionKm = rate
	return nil
}

func (s *Seaplane) setCruiseSpeedKmh(speed float64) error {
	if speed <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cruiseSpeedKmh", fmt.Errorf("%v must be positive", speed))
	}
	s.cruiseSpeedKmh = speed
	return nil
}
