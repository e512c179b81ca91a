package productrepo

import (
	"context"
	"fmt"

	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ ports.ProductRepository = (*MongoProductRepository)(nil)

// MongoProductRepository implements ProductRepository on the products
// collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(mongostore.ProductsCollection)}
}

func (r *MongoProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := r.coll.InsertOne(ctx, fromDomain(p))
	return mongostore.MapError(err)
}

func (r *MongoProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	var dto ProductDTO
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&dto); err != nil {
		return nil, mongostore.NotFound(err, "productId", id)
	}
	return toDomain(dto)
}

func (r *MongoProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	res, err := r.coll.UpdateByID(ctx, dto.ID, bson.M{"$set": bson.M{
		"name":            dto.Name,
		"description":     dto.Description,
		"stock_available": dto.StockAvailable,
		"weight_kg":       dto.WeightKg,
		"unit_price":      dto.UnitPrice,
	}})
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("productId", p.ID())
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	return mongostore.DeleteByID(ctx, r.coll, id)
}

func (r *MongoProductRepository) Find(ctx context.Context, filter ports.ProductFilter) ([]*product.Product, error) {
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

// DecrementStock subtracts quantity only while enough stock remains. A
// product that exists but cannot cover quantity yields a conflict.
func (r *MongoProductRepository) DecrementStock(ctx context.Context, id kernel.ID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d must be positive", quantity))
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id.ObjectID(), "stock_available": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"stock_available": -quantity}},
	)
	if err != nil {
		return mongostore.MapError(err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	if _, err = r.Get(ctx, id); err != nil {
		return err
	}
	return errs.NewConflictErrorWithCause("productId", id, fmt.Errorf("stock below %d", quantity))
}
