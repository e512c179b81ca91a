package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("lockerId", "66b1f0c2a4e5d6f7a8b9c0d1")

		assert.Equal(t, "lockerId", err.ParamName)
		assert.Equal(t, "66b1f0c2a4e5d6f7a8b9c0d1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 66b1f0c2a4e5d6f7a8b9c0d1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("no such port")
		err := errs.NewObjectNotFoundErrorWithCause("portId", 7, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: portId, ID is: 7 (cause: no such port)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("integer ids are printed plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("portId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a hex object id")
		err := errs.NewValueIsInvalidErrorWithCause("boxId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: boxId (cause: not a hex object id)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("boxesDelivered", 12, 0, 10)

		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10, err.Max)
		assert.Equal(t, "value is invalid: 12 is boxesDelivered, min value is 0, max value is 10", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("lat", -95, -90, 90, cause)

		assert.Equal(t,
			"value is invalid: -95 is lat, min value is -90, max value is 90 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("maintenanceReason")
	assert.Equal(t, "value is required: maintenanceReason", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("boxCapacity", errors.New("missing"))
	assert.Equal(t, "value is required: boxCapacity (cause: missing)", withCause.Error())
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order", "delivered", "pending")
		assert.Equal(t, "transition is invalid: order from delivered to pending", err.Error())
		assert.Equal(t, []error{errs.ErrInvalidTransition}, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		inUse := errors.New("locker in use")
		err := errs.NewInvalidTransitionErrorWithCause("locker", "occupied", "maintenance", inUse)
		assert.Equal(t, "transition is invalid: locker from occupied to maintenance (cause: locker in use)", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.ErrorIs(t, err, inUse)
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictErrorWithCause("seaplane", "HB-LSD", errors.New("deliveries in progress"))
	assert.Equal(t, "object is in conflict: seaplane HB-LSD (cause: deliveries in progress)", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.False(t, errors.Is(err, errs.ErrObjectNotFound))
	assert.Equal(t, "object is in conflict: seaplane HB-LSD", errs.NewConflictError("seaplane", "HB-LSD").Error())
}

func TestStoreUnavailableError(t *testing.T) {
	err := errs.NewStoreUnavailableError("mongo", context.DeadlineExceeded)
	assert.Equal(t, "store is unavailable: mongo (cause: context deadline exceeded)", err.Error())
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "transition is invalid", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "object is in conflict", errs.ErrConflict.Error())
	assert.Equal(t, "store is unavailable", errs.ErrStoreUnavailable.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("update locker: %w", errs.NewInvalidTransitionError("locker", "reserved", "empty"))
	require.ErrorIs(t, wrapped, errs.ErrInvalidTransition)

	joined := errors.Join(errs.NewValueIsRequiredError("model"), errs.NewValueIsInvalidError("status"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("id")))
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("id")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("n", 1, 2, 3)))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("id", 1)))
	assert.False(t, errs.IsValidation(errs.NewConflictError("id", 1)))
}
