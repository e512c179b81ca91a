package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/pkg/guard"
)

var ErrGetLockersQueryIsNotConstructed = errors.New(
	"GetLockersQuery must be created via NewGetLockersQuery constructor",
)

// GetLockersQuery lists lockers, optionally of one port and in one status.
//
// Example:
//
//	query, err := NewGetLockersQuery(&portID, &status)
//	lockers, err := handler.Handle(ctx, query)
type GetLockersQuery struct {
	portID *int
	status *locker.Status

	guard guard.ConstructorGuard
}

func NewGetLockersQuery(portID *int, status *string) (GetLockersQuery, error) {
	parsed, err := parseOptional(optionalText(status), locker.ParseStatus)
	if err != nil {
		return GetLockersQuery{}, err
	}

	return GetLockersQuery{
		portID: portID,
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersQueryIsNotConstructed)
}

func (q GetLockersQuery) PortID() *int {
	return q.portID
}

func (q GetLockersQuery) Status() *locker.Status {
	return q.status
}

var ErrCountLockersByPortQueryIsNotConstructed = errors.New(
	"CountLockersByPortQuery must be created via NewCountLockersByPortQuery constructor",
)

// CountLockersByPortQuery counts the locker documents of one port. The
// result is computed from the business store, not read from the port's
// denormalized counter.
type CountLockersByPortQuery struct {
	portID int

	guard guard.ConstructorGuard
}

func NewCountLockersByPortQuery(portID int) CountLockersByPortQuery {
	return CountLockersByPortQuery{portID: portID, guard: guard.NewConstructorGuard()}
}

func (q CountLockersByPortQuery) Validate() error {
	return q.guard.Validate(ErrCountLockersByPortQueryIsNotConstructed)
}

func (q CountLockersByPortQuery) PortID() int {
	return q.portID
}
