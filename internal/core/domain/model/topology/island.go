package topology

import (
	"errors"
	"strings"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var ErrIslandIsNotConstructed = errors.New("Island must be created via NewIsland constructor")

// Island is a read-only topology node. Names are unique across the network.
type Island struct {
	id          int
	name        string
	coordinates kernel.Coordinates
	areaKm2     float64

	isConstructed bool
}

// NewIsland validates and builds an island read from the graph store.
func NewIsland(id int, name string, coordinates kernel.Coordinates, areaKm2 float64) (*Island, error) {
	island := &Island{isConstructed: true, id: id}

	if err := errors.Join(
		island.setName(name),
		island.setCoordinates(coordinates),
		island.setArea(areaKm2),
	); err != nil {
		return nil, err
	}

	return island, nil
}

func (i *Island) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIslandIsNotConstructed
	}
	return nil
}

func (i *Island) ID() int {
	return i.id
}

func (i *Island) Name() string {
	return i.name
}

func (i *Island) Coordinates() kernel.Coordinates {
	return i.coordinates
}

func (i *Island) AreaKm2() float64 {
	return i.areaKm2
}

func (i *Island) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Island) setCoordinates(c kernel.Coordinates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	i.coordinates = c
	return nil
}

func (i *Island) setArea(area float64) error {
	if area < 0 {
		return errs.NewValueIsOutOfRangeError("areaKm2", area, 0, "unbounded")
	}
	i.areaKm2 = area
	return nil
}
