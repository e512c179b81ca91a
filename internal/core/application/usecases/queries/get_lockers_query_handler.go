package queries

import (
	"context"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
)

// GetLockersQueryHandler reads lockers from the business store, ordered by
// port then number.
type GetLockersQueryHandler struct {
	lockers ports.LockerRepository
}

func NewGetLockersQueryHandler(lockers ports.LockerRepository) GetLockersQueryHandler {
	return GetLockersQueryHandler{lockers: lockers}
}

func (h GetLockersQueryHandler) Handle(ctx context.Context, query GetLockersQuery) ([]*locker.Locker, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.lockers.Find(ctx, ports.LockerFilter{
		PortID: query.PortID(),
		Status: query.Status(),
	})
}

type CountLockersByPortQueryHandler struct {
	lockers ports.LockerRepository
}

func NewCountLockersByPortQueryHandler(lockers ports.LockerRepository) CountLockersByPortQueryHandler {
	return CountLockersByPortQueryHandler{lockers: lockers}
}

// Handle returns zero for a port without lockers, including unknown ports.
func (h CountLockersByPortQueryHandler) Handle(ctx context.Context, query CountLockersByPortQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	return h.lockers.CountByPort(ctx, query.PortID())
}
