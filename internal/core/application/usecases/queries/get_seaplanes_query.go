package queries

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrGetSeaplanesQueryIsNotConstructed = errors.New(
	"GetSeaplanesQuery must be created via NewGetSeaplanesQuery constructor",
)

// GetSeaplanesQuery lists the fleet, or one seaplane when an id is given,
// each with its location resolved at read time.
type GetSeaplanesQuery struct {
	seaplaneID *string

	guard guard.ConstructorGuard
}

func NewGetSeaplanesQuery(seaplaneID *string) GetSeaplanesQuery {
	return GetSeaplanesQuery{seaplaneID: optionalText(seaplaneID), guard: guard.NewConstructorGuard()}
}

func (q GetSeaplanesQuery) Validate() error {
	return q.guard.Validate(ErrGetSeaplanesQueryIsNotConstructed)
}

func (q GetSeaplanesQuery) SeaplaneID() *string {
	return q.seaplaneID
}
