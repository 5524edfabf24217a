package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertOrder stores an order; the payment_id index rejects replays
func (s *MongoStore) InsertOrder(ctx context.Context, o model.Order) error {
	_, err := s.orders.InsertOne(ctx, o)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert order for payment %s: %w", o.PaymentID, marketerrors.ErrDuplicateOrder)
	}
	if err != nil {
		return fmt.Errorf("insert order for payment %s: %w", o.PaymentID, err)
	}
	return nil
}

func (s *MongoStore) findOrder(ctx context.Context, filter bson.M, what string) (model.Order, error) {
	var o model.Order
	err := s.orders.FindOne(ctx, filter).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, fmt.Errorf("%s: %w", what, marketerrors.ErrOrderNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("%s: %w", what, err)
	}
	return o, nil
}

// GetOrder returns an order by id
func (s *MongoStore) GetOrder(ctx context.Context, id string) (model.Order, error) {
	return s.findOrder(ctx, bson.M{"_id": id}, "get order "+id)
}

// FindOrderByPayment returns the order materialized from paymentID
func (s *MongoStore) FindOrderByPayment(ctx context.Context, paymentID string) (model.Order, error) {
	return s.findOrder(ctx, bson.M{"payment_id": paymentID}, "find order for payment "+paymentID)
}

// ListOrders returns orders matching filter, newest first
func (s *MongoStore) ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	q := bson.M{}
	if filter.BuyerEmail != "" {
		q["buyer_email"] = filter.BuyerEmail
	}
	if filter.SellerEmail != "" {
		q["items.seller_email"] = filter.SellerEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]model.Order, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return out, nil
}

// CountOrders counts all orders
func (s *MongoStore) CountOrders(ctx context.Context) (int64, error) {
	n, err := s.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// UpdateOrderStatus sets the fulfilment status of an order
func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, at time.Time) (model.Order, error) {
	var o model.Order
	err := s.orders.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, fmt.Errorf("update order %s: %w", id, marketerrors.ErrOrderNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}
	return o, nil
}
