package kernel

import (
	"strings"

	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID, ParseID or IDFromObjectID")

// ID identifies a document in the business store. It wraps a BSON ObjectID so
// callers never handle driver types, while malformed hex strings are rejected
// as validation errors before any query is issued.
//
// Example:
//
//	id, err := kernel.ParseID("lockerId", "66b1f0c2a4e5d6f7a8b9c0d1")
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
type ID struct {
	oid primitive.ObjectID
}

// NewID generates a fresh identifier.
func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

// ParseID parses the 24-character hex form. paramName is reported in the
// validation error so callers can tell which argument was malformed.
func ParseID(paramName, hex string) (ID, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return ID{}, errs.NewValueIsRequiredError(paramName)
	}

	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return ID{oid: oid}, nil
}

// ParseOptionalID parses hex when it is non-nil. A nil input yields a nil ID.
func ParseOptionalID(paramName string, hex *string) (*ID, error) {
	if hex == nil {
		return nil, nil //nolint:nilnil // absent optional filter
	}

	id, err := ParseID(paramName, *hex)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// IDFromObjectID wraps an ObjectID read back from the store.
func IDFromObjectID(oid primitive.ObjectID) (ID, error) {
	id := ID{oid: oid}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// String returns the hex representation.
func (i ID) String() string {
	return i.oid.Hex()
}

// ObjectID exposes the driver value for adapters.
func (i ID) ObjectID() primitive.ObjectID {
	return i.oid
}

// IsEqual reports whether both identifiers hold the same value.
func (i ID) IsEqual(other ID) bool {
	return i.oid == other.oid
}

// Validate fails for the zero value.
func (i ID) Validate() error {
	if i.oid.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}
