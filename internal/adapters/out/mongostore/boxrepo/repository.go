package boxrepo

import (
	"context"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.BoxRepository = (*MongoBoxRepository)(nil)

// MongoBoxRepository implements BoxRepository on the boxes collection.
type MongoBoxRepository struct {
	coll *mongo.Collection
}

func NewMongoBoxRepository(db *mongo.Database) *MongoBoxRepository {
	return &MongoBoxRepository{coll: db.Collection(mongostore.BoxesCollection)}
}

func (r *MongoBoxRepository) Add(ctx context.Context, b *box.Box) error {
	if err := b.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(b))
	return mongostore.MapError(err)
}

func (r *MongoBoxRepository) Get(ctx context.Context, id kernel.ID) (*box.Box, error) {
	var dto BoxDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "boxId", id)
	}
	return toDomain(dto)
}

func (r *MongoBoxRepository) Update(ctx context.Context, b *box.Box) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := fromDomain(b)
	res, err := r.coll.UpdateByID(ctx, dto.ID, bson.M{"$set": bson.M{
		"number":  dto.Number,
		"status":  dto.Status,
		"content": dto.Content,
	}})
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("boxId", b.ID())
	}
	return nil
}

func (r *MongoBoxRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	return mongostore.DeleteByID(ctx, r.coll, id)
}

// Find returns the matching boxes ordered by order, then number.
func (r *MongoBoxRepository) Find(ctx context.Context, filter ports.BoxFilter) ([]*box.Box, error) {
	query := bson.M{}
	if filter.ID != nil {
		query["_id"] = filter.ID.ObjectID()
	}
	if filter.OrderID != nil {
		query["order_id"] = filter.OrderID.ObjectID()
	}
	if filter.ClientID != nil {
		query["client_id"] = filter.ClientID.ObjectID()
	}
	if filter.Status != nil {
		query["status"] = mongostore.StatusValue(*filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_id", Value: 1}, {Key: "number", Value: 1}})
	return mongostore.FindAll(ctx, r.coll, query, opts, toDomain)
}
