package deliveryrepo

import (
	"context"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/delivery"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.DeliveryRepository = (*MongoDeliveryRepository)(nil)

// MongoDeliveryRepository implements DeliveryRepository on the deliveries
// collection.
type MongoDeliveryRepository struct {
	coll *mongo.Collection
}

func NewMongoDeliveryRepository(db *mongo.Database) *MongoDeliveryRepository {
	return &MongoDeliveryRepository{coll: db.Collection(mongostore.DeliveriesCollection)}
}

func (r *MongoDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(d))
	return mongostore.MapError(err)
}

func (r *MongoDeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "deliveryId", id)
	}
	return toDomain(dto)
}

// Update writes the progress fields. The plan is fixed at scheduling time.
func (r *MongoDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	set := bson.M{
		"status":       dto.Status,
		"current_port": dto.CurrentPort,
	}
	unset := bson.M{}
	if dto.DepartureDate != nil {
		set["departure_date"] = dto.DepartureDate
	}
	if dto.ArrivalDate != nil {
		set["arrival_date"] = dto.ArrivalDate
	}
	if dto.DelayReason != "" {
		set["delay_reason"] = dto.DelayReason
	} else {
		unset["delay_reason"] = ""
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
		return errs.NewObjectNotFoundError("deliveryId", d.ID())
	}
	return nil
}

// Find returns the matching deliveries, most recently scheduled first.
func (r *MongoDeliveryRepository) Find(ctx context.Context, filter ports.DeliveryFilter) ([]*delivery.Delivery, error) {
	query := bson.M{}
	if filter.OrderID != nil {
		query["order_id"] = filter.OrderID.ObjectID()
	}
	if filter.SeaplaneID != nil {
		query["seaplane_id"] = *filter.SeaplaneID
	}
	if filter.Status != nil {
		query["status"] = mongostore.StatusValue(*filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return mongostore.FindAll(ctx, r.coll, query, opts, toDomain)
}

func (r *MongoDeliveryRepository) CountBySeaplaneAndStatus(
	ctx context.Context,
	seaplaneID string,
	status delivery.Status,
) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"seaplane_id": seaplaneID,
		"status":      mongostore.StatusValue(status),
	})
	return count, mongostore.MapError(err)
}
