package topology

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var ErrPortIsNotConstructed = errors.New("Port must be created via NewPort constructor")

// Port is a topology node lockers and seaplanes attach to.
//
// lockerCount is the denormalized counter stored on the node. It is not
// authoritative: the locker documents are, and the counter only converges to
// their count once secondary writes or the reconciliation job catch up.
type Port struct {
	id          int
	name        string
	coordinates kernel.Coordinates
	island      *Island
	lockerCount int64
	warehouse   bool

	isConstructed bool
}

// NewPort builds a port. island may be nil when the HAS_PORT edge was not read.
func NewPort(
	id int,
	name string,
	coordinates kernel.Coordinates,
	island *Island,
	lockerCount int64,
	warehouse bool,
) (*Port, error) {
	// A negative counter can be observed after a lost increment followed by a
	// decrement; it is kept as read so reconciliation can spot it.
	port := &Port{
		id:            id,
		island:        island,
		lockerCount:   lockerCount,
		warehouse:     warehouse,
		isConstructed: true,
	}

	if err := errors.Join(
		port.setName(name),
		port.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return port, nil
}

func (p *Port) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPortIsNotConstructed
	}
	return nil
}

func (p *Port) ID() int {
	return p.id
}

func (p *Port) Name() string {
	return p.name
}

func (p *Port) Coordinates() kernel.Coordinates {
	return p.coordinates
}

// Island returns the owning island, or nil when it was not resolved.
func (p *Port) Island() *Island {
	return p.island
}

// LockerCount returns the stored counter value.
func (p *Port) LockerCount() int64 {
	return p.lockerCount
}

func (p *Port) IsWarehouse() bool {
	return p.warehouse
}

// WithJoinedLockers returns a copy whose counter is replaced by the size of a
// freshly read locker list. Used by read models that join lockers.
func (p *Port) WithJoinedLockers(joined int) *Port {
	clone := *p
	clone.lockerCount = int64(joined)
	return &clone
}

func (p *Port) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Port) setCoordinates(c kernel.Coordinates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p.coordinates = c
	return nil
}

