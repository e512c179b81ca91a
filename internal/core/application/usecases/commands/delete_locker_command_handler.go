package commands

import (
	"context"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

// DeleteLockerCommandHandler removes EMPTY lockers and decrements the port
// counter afterwards.
type DeleteLockerCommandHandler struct {
	ports       ports.PortRepository
	lockers     ports.LockerRepository
	coordinator *consistency.Coordinator
}

func NewDeleteLockerCommandHandler(
	portRepo ports.PortRepository,
	lockers ports.LockerRepository,
	coordinator *consistency.Coordinator,
) DeleteLockerCommandHandler {
	return DeleteLockerCommandHandler{
		ports:       portRepo,
		lockers:     lockers,
		coordinator: coordinator,
	}
}

// Handle reports whether a document was removed. The counter is only
// decremented when one was.
func (h DeleteLockerCommandHandler) Handle(ctx context.Context, cmd DeleteLockerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var (
		existing *locker.Locker
		removed  bool
	)

	_, err := h.coordinator.Execute(ctx, consistency.Plan{
		Operation: "delete_locker",
		Checks: []consistency.Step{
			{Name: "locker_is_empty", Run: func(ctx context.Context) error {
				l, err := h.lockers.Get(ctx, cmd.LockerID())
				if err != nil {
					return err
				}
				existing = l
				return l.CheckDeletable()
			}},
		},
		Primary: consistency.Step{Name: "delete_locker", Run: func(ctx context.Context) error {
			var err error
			removed, err = h.lockers.Delete(ctx, cmd.LockerID())
			return err
		}},
		Secondaries: []consistency.Step{
			{Name: "decrement_port_counter", Run: func(ctx context.Context) error {
				if !removed {
					return nil
				}
				return h.ports.AdjustLockerCount(ctx, existing.PortID(), -1)
			}},
		},
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}
