package orderrepo

import (
	"context"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.OrderRepository = (*MongoOrderRepository)(nil)

// MongoOrderRepository implements OrderRepository on the orders collection.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(mongostore.OrdersCollection)}
}

func (r *MongoOrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(o))
	return mongostore.MapError(err)
}

func (r *MongoOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "orderId", id)
	}
	return toDomain(dto)
}

// UpdateStatus sets the status in a single conditional write. The filter
// only matches documents whose stored status is at or before status, so a
// writer holding a stale read cannot move the order backwards.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	allowed := order.StatusesUpTo(status)
	if len(allowed) == 0 {
		return status.Validate()
	}

	values := make([]string, 0, len(allowed))
	for _, s := range allowed {
		values = append(values, mongostore.StatusValue(s))
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id.ObjectID(), "status": bson.M{"$in": values}},
		bson.M{"$set": bson.M{"status": mongostore.StatusValue(status)}},
	)
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return errs.NewInvalidTransitionError("order", current.Status().String(), status.String())
}

// SetBoxesDelivered writes boxes_delivered only. Concurrent writers race on
// this field and the later one wins.
func (r *MongoOrderRepository) SetBoxesDelivered(ctx context.Context, id kernel.ID, delivered int) error {
	res, err := r.coll.UpdateByID(ctx, id.ObjectID(), bson.M{"$set": bson.M{"boxes_delivered": delivered}})
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return nil
}

func (r *MongoOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	return mongostore.DeleteByID(ctx, r.coll, id)
}

// Find returns the matching orders, newest first.
func (r *MongoOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := bson.M{}
	if filter.ID != nil {
		query["_id"] = filter.ID.ObjectID()
	}
	if filter.ClientID != nil {
		query["client_id"] = filter.ClientID.ObjectID()
	}
	if filter.Status != nil {
		query["status"] = mongostore.StatusValue(*filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
	return mongostore.FindAll(ctx, r.coll, query, opts, toDomain)
}
