package commands

import (
	"context"

	"galapagos/internal/core/application/consistency"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

// AddLockerCommandHandler creates lockers with append-only numbering per port.
//
// The locker document is the primary write. The port counter in the topology
// store is incremented afterwards and may be left behind if that write fails;
// the reconciliation job repairs it.
//
// Two concurrent calls for the same port can compute the same number. The
// business store rejects the second insert with a conflict.
type AddLockerCommandHandler struct {
	ports       ports.PortRepository
	lockers     ports.LockerRepository
	coordinator *consistency.Coordinator
}

func NewAddLockerCommandHandler(
	portRepo ports.PortRepository,
	lockers ports.LockerRepository,
	coordinator *consistency.Coordinator,
) AddLockerCommandHandler {
	return AddLockerCommandHandler{
		ports:       portRepo,
		lockers:     lockers,
		coordinator: coordinator,
	}
}

// Handle returns the created locker.
func (h AddLockerCommandHandler) Handle(ctx context.Context, cmd AddLockerCommand) (*locker.Locker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *locker.Locker

	_, err := h.coordinator.Execute(ctx, consistency.Plan{
		Operation: "add_locker",
		Checks: []consistency.Step{
			{Name: "port_exists", Run: func(ctx context.Context) error {
				_, err := h.ports.Get(ctx, cmd.PortID())
				return err
			}},
			{Name: "next_number", Run: func(ctx context.Context) error {
				maxNumber, err := h.lockers.MaxNumber(ctx, cmd.PortID())
				if err != nil {
					return err
				}
				created, err = locker.NewLocker(cmd.PortID(), maxNumber+1)
				return err
			}},
		},
		Primary: consistency.Step{Name: "insert_locker", Run: func(ctx context.Context) error {
			return h.lockers.Add(ctx, created)
		}},
		Secondaries: []consistency.Step{
			{Name: "increment_port_counter", Run: func(ctx context.Context) error {
				return h.ports.AdjustLockerCount(ctx, cmd.PortID(), 1)
			}},
		},
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
