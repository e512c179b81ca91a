package commands

import (
	"context"
	"errors"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

var (
	ErrSeaplaneHasActiveDelivery = errors.New("seaplane is referenced by an IN_PROGRESS delivery")
	ErrSeaplaneIsFlying          = errors.New("seaplane has flight relationships")
)

// DeleteSeaplaneCommandHandler removes a seaplane node and its relationships.
//
// The business store is checked first: a seaplane carrying an IN_PROGRESS
// delivery is never deleted, whatever its topology state.
type DeleteSeaplaneCommandHandler struct {
	seaplanes   ports.SeaplaneRepository
	deliveries  ports.DeliveryRepository
	coordinator *consistency.Coordinator
}

func NewDeleteSeaplaneCommandHandler(
	seaplanes ports.SeaplaneRepository,
	deliveries ports.DeliveryRepository,
	coordinator *consistency.Coordinator,
) DeleteSeaplaneCommandHandler {
	return DeleteSeaplaneCommandHandler{
		seaplanes:   seaplanes,
		deliveries:  deliveries,
		coordinator: coordinator,
	}
}

// Handle reports whether the seaplane existed.
func (h DeleteSeaplaneCommandHandler) Handle(ctx context.Context, cmd DeleteSeaplaneCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	id := cmd.SeaplaneID()
	var existed bool

	_, err := h.coordinator.Execute(ctx, consistency.Plan{
		Operation: "delete_seaplane",
		Checks: []consistency.Step{
			{Name: "no_active_delivery", Run: func(ctx context.Context) error {
				active, err := h.deliveries.CountBySeaplaneAndStatus(ctx, id, delivery.InProgress)
				if err != nil {
					return err
				}
				if active > 0 {
					return errs.NewConflictErrorWithCause("seaplaneId", id, ErrSeaplaneHasActiveDelivery)
				}
				return nil
			}},
			{Name: "not_flying", Run: func(ctx context.Context) error {
				flying, err := h.seaplanes.HasFlightRelationships(ctx, id)
				if err != nil {
					return err
				}
				if flying {
					return errs.NewConflictErrorWithCause("seaplaneId", id, ErrSeaplaneIsFlying)
				}
				return nil
			}},
		},
		Primary: consistency.Step{Name: "delete_seaplane", Run: func(ctx context.Context) error {
			var err error
			existed, err = h.seaplanes.Delete(ctx, id)
			return err
		}},
	})
	if err != nil {
		return false, err
	}

	return existed, nil
}
