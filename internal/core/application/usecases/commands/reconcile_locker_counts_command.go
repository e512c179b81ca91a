package commands

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrReconcileLockerCountsCommandIsNotConstructed = errors.New(
	"ReconcileLockerCountsCommand must be created via NewReconcileLockerCountsCommand constructor",
)

// ReconcileLockerCountsCommand requests a repair of every port locker counter
// that drifted from the business store.
type ReconcileLockerCountsCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileLockerCountsCommand() ReconcileLockerCountsCommand {
	return ReconcileLockerCountsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReconcileLockerCountsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileLockerCountsCommandIsNotConstructed)
}
