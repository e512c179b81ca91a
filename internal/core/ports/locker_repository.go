package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
)

// LockerFilter narrows a locker search. Nil fields do not filter.
type LockerFilter struct {
	PortID *int
	Status *locker.Status
}

// LockerRepository stores locker documents. Updates are single-document
// writes of the whole mutable state with no version check: the last write
// wins.
type LockerRepository interface {
	Add(ctx context.Context, l *locker.Locker) error
	Get(ctx context.Context, id kernel.ID) (*locker.Locker, error)
	Update(ctx context.Context, l *locker.Locker) error

	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id kernel.ID) (bool, error)

	// MaxNumber returns the highest locker number at the port, 0 when none.
	MaxNumber(ctx context.Context, portID int) (int, error)

	Find(ctx context.Context, filter LockerFilter) ([]*locker.Locker, error)
	CountByPort(ctx context.Context, portID int) (int64, error)

	// CountAllByPort counts lockers grouped by port. Ports without lockers
	// are absent from the result.
	CountAllByPort(ctx context.Context) (map[int]int64, error)
}
