package lockerrepo

import (
	"context"
	"errors"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.LockerRepository = (*MongoLockerRepository)(nil)

// MongoLockerRepository implements LockerRepository on the lockers
// collection.
type MongoLockerRepository struct {
	coll *mongo.Collection
}

func NewMongoLockerRepository(db *mongo.Database) *MongoLockerRepository {
	return &MongoLockerRepository{coll: db.Collection(mongostore.LockersCollection)}
}

// Add inserts a new locker. A second locker with the same port and number
// fails with a conflict.
func (r *MongoLockerRepository) Add(ctx context.Context, l *locker.Locker) error {
	if err := l.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(l))
	return mongostore.MapError(err)
}

func (r *MongoLockerRepository) Get(ctx context.Context, id kernel.ID) (*locker.Locker, error) {
	var dto LockerDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "lockerId", id)
	}
	return toDomain(dto)
}

// Update writes the mutable state in one document update. Optional fields
// that are absent on the locker are removed from the document.
func (r *MongoLockerRepository) Update(ctx context.Context, l *locker.Locker) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	set := bson.M{"status": dto.Status}
	unset := bson.M{}

	if dto.BoxID != nil {
		set["box_id"] = dto.BoxID
	} else {
		unset["box_id"] = ""
	}
	if dto.ReservedForOrderID != nil {
		set["reserved_for_order_id"] = dto.ReservedForOrderID
	} else {
		unset["reserved_for_order_id"] = ""
	}
	if dto.MaintenanceReason != "" {
		set["maintenance_reason"] = dto.MaintenanceReason
	} else {
		unset["maintenance_reason"] = ""
	}
	if dto.LastUsed != nil {
		set["last_used"] = dto.LastUsed
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.coll.UpdateByID(ctx, dto.ID, update)
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("lockerId", l.ID())
	}
	return nil
}

func (r *MongoLockerRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	return mongostore.DeleteByID(ctx, r.coll, id)
}

func (r *MongoLockerRepository) MaxNumber(ctx context.Context, portID int) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "number", Value: -1}}).
		SetProjection(bson.M{"number": 1})

	var dto struct {
		Number int `bson:"number"`
	}
	err := r.coll.FindOne(ctx, bson.M{"port_id": portID}, opts).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, mongostore.MapError(err)
	}
	return dto.Number, nil
}

// Find returns the matching lockers ordered by port, then number.
func (r *MongoLockerRepository) Find(ctx context.Context, filter ports.LockerFilter) ([]*locker.Locker, error) {
	opts := options.Find().SetSort(bson.D{{Key: "port_id", Value: 1}, {Key: "number", Value: 1}})
	return mongostore.FindAll(ctx, r.coll, buildFilter(filter), opts, toDomain)
}

func (r *MongoLockerRepository) CountByPort(ctx context.Context, portID int) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"port_id": portID})
	return count, mongostore.MapError(err)
}

func (r *MongoLockerRepository) CountAllByPort(ctx context.Context) (map[int]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$port_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mongostore.MapError(err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		PortID int   `bson:"_id"`
		Count  int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, mongostore.MapError(err)
	}

	counts := make(map[int]int64, len(groups))
	for _, g := range groups {
		counts[g.PortID] = g.Count
	}
	return counts, nil
}

func buildFilter(filter ports.LockerFilter) bson.M {
	query := bson.M{}
	if filter.PortID != nil {
		query["port_id"] = *filter.PortID
	}
	if filter.Status != nil {
		query["status"] = mongostore.StatusValue(*filter.Status)
	}
	return query
}
