package mongostore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"galapagos/internal/core/domain/model/kernel"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OptionalObjectID converts an optional identifier for storage.
func OptionalObjectID(id *kernel.ID) *primitive.ObjectID {
	if id == nil {
		return nil
	}
	oid := id.ObjectID()
	return &oid
}

// OptionalID converts a stored optional identifier back.
func OptionalID(oid *primitive.ObjectID) (*kernel.ID, error) {
	if oid == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.IDFromObjectID(*oid)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ObjectIDs converts a list of identifiers for storage. The result is never
// nil so arrays are stored as [] rather than null.
func ObjectIDs(ids []kernel.ID) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oids = append(oids, id.ObjectID())
	}
	return oids
}

func IDs(oids []primitive.ObjectID) ([]kernel.ID, error) {
	ids := make([]kernel.ID, 0, len(oids))
	for _, oid := range oids {
		id, err := kernel.IDFromObjectID(oid)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// StatusValue is the stored form of a status name.
func StatusValue(status interface{ String() string }) string {
	return strings.ToLower(status.String())
}

// ContainsIgnoreCase matches documents whose field contains text, ignoring
// case. text is quoted, never interpreted as a pattern.
func ContainsIgnoreCase(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

// FindAll runs filter and maps every document with toDomain.
func FindAll[D any, T any](
	ctx context.Context,
	coll *mongo.Collection,
	filter bson.M,
	opts *options.FindOptions,
	toDomain func(D) (T, error),
) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, MapError(err)
	}
	defer cursor.Close(ctx)

	var dtos []D
	if err = cursor.All(ctx, &dtos); err != nil {
		return nil, MapError(err)
	}

	result := make([]T, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// DeleteByID removes the document with id and reports whether it existed.
func DeleteByID(ctx context.Context, coll *mongo.Collection, id kernel.ID) (bool, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id.ObjectID()})
	if err != nil {
		return false, MapError(err)
	}
	return res.DeletedCount > 0, nil
}

// UTC normalizes a stored time. The driver decodes dates in local time.
func UTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
