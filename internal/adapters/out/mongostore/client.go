// Package mongostore connects to the business store and holds what its
// repositories share: collection names, indexes and error mapping.
//
// Every collection lives in its own repository package:
//
//	lockerrepo    lockers
//	orderrepo     orders
//	boxrepo       boxes
//	clientrepo    clients
//	productrepo   products
//	deliveryrepo  deliveries
//
// Repositories issue single-document writes only. The store has no
// transactions spanning collections, and none are attempted.
package mongostore

import (
	"context"
	"time"

	"galapagos/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	// DefaultDatabase is used when the connection URI names no database.
	DefaultDatabase = "galapagos"

	LockersCollection    = "lockers"
	OrdersCollection     = "orders"
	BoxesCollection      = "boxes"
	ClientsCollection    = "clients"
	ProductsCollection   = "products"
	DeliveriesCollection = "deliveries"

	connectTimeout = 10 * time.Second
)

// Connect opens a client for uri, pings the primary and returns the
// database named by the URI path.
//
// Example:
//
//	client, db, err := mongostore.Connect(ctx, "mongodb://localhost:27017/galapagos")
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(context.Background())
func Connect(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("mongoUri", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, nil, MapError(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.NewStoreUnavailableError("mongodb", err)
	}

	name := cs.Database
	if name == "" {
		name = DefaultDatabase
	}

	return client, client.Database(name), nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is
// idempotent.
//
// The unique (port_id, number) index turns two concurrent addLocker calls
// that picked the same number into a conflict for the later insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		LockersCollection: {
			{
				Keys:    bson.D{{Key: "port_id", Value: 1}, {Key: "number", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("port_number_unique"),
			},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		BoxesCollection: {
			{Keys: bson.D{{Key: "order_id", Value: 1}}},
		},
		DeliveriesCollection: {
			{Keys: bson.D{{Key: "seaplane_id", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "order_id", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return MapError(err)
		}
	}
	return nil
}
