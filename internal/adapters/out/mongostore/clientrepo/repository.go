package clientrepo

import (
	"context"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.ClientRepository = (*MongoClientRepository)(nil)

// MongoClientRepository implements ClientRepository on the clients
// collection.
type MongoClientRepository struct {
	coll *mongo.Collection
}

func NewMongoClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{coll: db.Collection(mongostore.ClientsCollection)}
}

func (r *MongoClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(c))
	return mongostore.MapError(err)
}

func (r *MongoClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	var dto ClientDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "clientId", id)
	}
	return toDomain(dto)
}

// Update rewrites the profile. order_history is only ever changed by
// AppendOrder.
func (r *MongoClientRepository) Update(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	res, err := r.coll.UpdateByID(ctx, dto.ID, bson.M{"$set": bson.M{
		"name":      dto.Name,
		"type":      dto.Type,
		"specialty": dto.Specialty,
		"study":     dto.Study,
		"email":     dto.Email,
	}})
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("clientId", c.ID())
	}
	return nil
}

func (r *MongoClientRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	return mongostore.DeleteByID(ctx, r.coll, id)
}

func (r *MongoClientRepository) Find(ctx context.Context, filter ports.ClientFilter) ([]*client.Client, error) {
	query := bson.M{}
	if filter.ID != nil {
		query["_id"] = filter.ID.ObjectID()
	}
	if filter.Name != nil {
		query["name"] = mongostore.ContainsIgnoreCase(*filter.Name)
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return mongostore.FindAll(ctx, r.coll, query, opts, toDomain)
}

func (r *MongoClientRepository) AppendOrder(ctx context.Context, clientID, orderID kernel.ID) error {
	res, err := r.coll.UpdateByID(ctx, clientID.ObjectID(), bson.M{
		"$push": bson.M{"order_history": orderID.ObjectID()},
	})
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("clientId", clientID)
	}
	return nil
}
