package kernel

import (
	"errors"
	"fmt"

	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a WGS84 latitude/longitude pair.
//
// Example:
//
//	baquerizo, _ := kernel.NewCoordinates(-0.9017, -89.6103)
//	villamil, _ := kernel.NewCoordinates(-0.9560, -90.9660)
//	mid := baquerizo.Midpoint(villamil)
//	km := baquerizo.DistanceKm(villamil)
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates both axes and returns the pair.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLon(lon)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lon() float64 {
	return c.lon
}

// Point returns the orb representation, which orders longitude first.
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.lon, c.lat}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.4f,%.4f)", c.lat, c.lon)
}

// Midpoint returns the half-way point along the great circle between c and other.
func (c Coordinates) Midpoint(other Coordinates) Coordinates {
	mid := geo.Midpoint(c.Point(), other.Point())
	return Coordinates{
		lat:   mid.Lat(),
		lon:   mid.Lon(),
		guard: guard.NewConstructorGuard(),
	}
}

// DistanceKm returns the haversine distance in kilometres.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	return geo.DistanceHaversine(c.Point(), other.Point()) / 1000
}

func (c *Coordinates) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	c.lat = lat
	return nil
}

func (c *Coordinates) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lon", lon, LongitudeMin, LongitudeMax)
	}

	c.lon = lon
	return nil
}
