// Package guard holds the constructor guard embedded by commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. A zero value
// fails Validate, so a command assembled as a struct literal is rejected
// before a handler touches any store.
//
// Example usage:
//
//	type DeleteLockerCommand struct {
//	    lockerID kernel.ID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c DeleteLockerCommand) Validate() error {
//	    return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
