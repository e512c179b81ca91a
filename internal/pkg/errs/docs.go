// Package errs provides standardized error types for the galapagos core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error kinds the lifecycle managers report:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: a referenced entity is absent from its store
//   - InvalidTransitionError: a state machine rejected the requested change
//   - ConflictError: a deletion is blocked by active references
//   - StoreUnavailableError: connectivity or timeout failure talking to a store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// Validation and transition errors are raised before any write is attempted,
// so a caller may always retry them with corrected input. Store errors are
// surfaced as-is; nothing in the core retries.
package errs
