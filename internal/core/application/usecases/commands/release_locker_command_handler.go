package commands

import (
	"context"
	"time"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

type ReleaseLockerCommandHandler struct {
	lockers ports.LockerRepository
}

func NewReleaseLockerCommandHandler(lockers ports.LockerRepository) ReleaseLockerCommandHandler {
	return ReleaseLockerCommandHandler{lockers: lockers}
}

// Handle clears the box reference and stamps the release time as last use.
func (h ReleaseLockerCommandHandler) Handle(ctx context.Context, cmd ReleaseLockerCommand) (*locker.Locker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := h.lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return nil, err
	}

	if err = l.Release(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.lockers.Update(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}
