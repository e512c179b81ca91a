package mongostore

import (
	"context"
	"errors"

	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

const storeName = "mongodb"

// MapError translates driver errors into the error kinds of the core.
//
//   - duplicate keys become conflicts
//   - network failures, timeouts and server selection failures become
//     StoreUnavailable
//
// Other errors, including context cancellation, are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var selection topology.ServerSelectionError
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case mongo.IsDuplicateKeyError(err):
		return errs.NewConflictErrorWithCause("document", nil, err)
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.As(err, &selection):
		return errs.NewStoreUnavailableError(storeName, err)
	default:
		return err
	}
}

// NotFound maps mongo.ErrNoDocuments to an ObjectNotFound error for param.
func NotFound(err error, param string, id any) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return MapError(err)
}
