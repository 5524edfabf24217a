package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	listingsCollection   = "bids"
	principalsCollection = "principals"
	productsCollection   = "products"
	basketsCollection    = "baskets"
	ordersCollection     = "orders"
	eventsCollection     = "events"
	complaintsCollection = "complaints"
)

// MongoStore implements every store on top of one MongoDB database
type MongoStore struct {
	client     *mongo.Client
	listings   *mongo.Collection
	principals *mongo.Collection
	products   *mongo.Collection
	baskets    *mongo.Collection
	orders     *mongo.Collection
	events     *mongo.Collection
	complaints *mongo.Collection
}

var (
	_ ListingStore   = (*MongoStore)(nil)
	_ PrincipalStore = (*MongoStore)(nil)
	_ CatalogStore   = (*MongoStore)(nil)
	_ OrderStore     = (*MongoStore)(nil)
	_ EventStore     = (*MongoStore)(nil)
	_ ComplaintStore = (*MongoStore)(nil)
)

// ConnectMongo dials uri, verifies the connection and prepares indexes on database.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	store := NewMongoStore(client, database)
	if err := store.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return store, nil
}

// NewMongoStore wraps an already connected client
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		client:     client,
		listings:   db.Collection(listingsCollection),
		principals: db.Collection(principalsCollection),
		products:   db.Collection(productsCollection),
		baskets:    db.Collection(basketsCollection),
		orders:     db.Collection(ordersCollection),
		events:     db.Collection(eventsCollection),
		complaints: db.Collection(complaintsCollection),
	}
}

// Close disconnects the underlying client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{s.principals, mongo.IndexModel{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.orders, mongo.IndexModel{
			Keys:    bson.D{{Key: "payment_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.orders, mongo.IndexModel{Keys: bson.D{{Key: "buyer_email", Value: 1}}}},
		{s.orders, mongo.IndexModel{Keys: bson.D{{Key: "items.seller_email", Value: 1}}}},
		{s.listings, mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}, {Key: "last_date", Value: 1}}}},
		{s.listings, mongo.IndexModel{Keys: bson.D{{Key: "bids.bidder_identity", Value: 1}}}},
		{s.listings, mongo.IndexModel{Keys: bson.D{{Key: "creator.identity", Value: 1}}}},
		{s.products, mongo.IndexModel{Keys: bson.D{{Key: "seller_email", Value: 1}}}},
		{s.products, mongo.IndexModel{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "created_at", Value: -1}}}},
		{s.events, mongo.IndexModel{Keys: bson.D{{Key: "instructor_id", Value: 1}}}},
		{s.events, mongo.IndexModel{Keys: bson.D{{Key: "registered_users.user_email", Value: 1}}}},
		{s.events, mongo.IndexModel{Keys: bson.D{{Key: "registered_users.payment_id", Value: 1}}}},
		{s.complaints, mongo.IndexModel{Keys: bson.D{{Key: "author.identity", Value: 1}}}},
		{s.complaints, mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

func (s *MongoStore) exists(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
