package neo4jstore

import (
	"context"
	"errors"

	"galapagos/internal/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	storeName = "neo4j"

	constraintViolation = "Neo.ClientError.Schema.ConstraintValidationFailed"
)

// MapError translates driver errors into the error kinds of the core.
//
//   - constraint violations become conflicts
//   - connectivity failures, transient errors and deadlines become
//     StoreUnavailable
//
// Other errors, including context cancellation, are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var neoErr *neo4j.Neo4jError
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.As(err, &neoErr) && neoErr.Code == constraintViolation:
		return errs.NewConflictErrorWithCause("node", nil, err)
	case neo4j.IsConnectivityError(err),
		neo4j.IsRetryable(err),
		errors.Is(err, context.DeadlineExceeded):
		return errs.NewStoreUnavailableError(storeName, err)
	default:
		return err
	}
}
