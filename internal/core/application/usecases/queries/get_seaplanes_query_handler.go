package queries

import (
	"context"

	"galapagos/internal/core/application/fleet"
)

// GetSeaplanesQueryHandler reads seaplanes from the topology store. An
// unknown id yields an empty list rather than an error.
type GetSeaplanesQueryHandler struct {
	locator *fleet.Locator
}

func NewGetSeaplanesQueryHandler(locator *fleet.Locator) GetSeaplanesQueryHandler {
	return GetSeaplanesQueryHandler{locator: locator}
}

func (h GetSeaplanesQueryHandler) Handle(ctx context.Context, query GetSeaplanesQuery) ([]fleet.LocatedSeaplane, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.locator.Locate(ctx, query.SeaplaneID())
}
