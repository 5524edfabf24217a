package repository

import (
	"context"
	"errors"
	"fmt"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func listingQuery(f ListingFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if !f.EndsAfter.IsZero() {
		q["last_date"] = bson.M{"$gt": f.EndsAfter}
	}
	if f.Creator != "" {
		q["creator.identity"] = f.Creator
	}
	if f.Participant != "" {
		q["$or"] = bson.A{
			bson.M{"bids.bidder_identity": f.Participant},
			bson.M{"creator.identity": f.Participant, "status": model.StatusApproved},
		}
	}
	return q
}

// InsertListing stores a new listing
func (s *MongoStore) InsertListing(ctx context.Context, listing model.Listing) error {
	// $push needs an array, never null
	if listing.Bids == nil {
		listing.Bids = []model.BidEntry{}
	}
	if _, err := s.listings.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("insert listing %s: %w", listing.ID, err)
	}
	return nil
}

// GetListing returns a listing by id
func (s *MongoStore) GetListing(ctx context.Context, id string) (model.Listing, error) {
	var l model.Listing
	err := s.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return l, nil
}

// FindListings returns listings matching filter, newest first
func (s *MongoStore) FindListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.listings.Find(ctx, listingQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}

	out := make([]model.Listing, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return out, nil
}

// CountListings counts listings matching filter
func (s *MongoStore) CountListings(ctx context.Context, filter ListingFilter) (int64, error) {
	n, err := s.listings.CountDocuments(ctx, listingQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// AcceptBid records bid with a single findAndModify whose filter carries every
// acceptance condition, so two racing bids cannot both claim the same amount.
func (s *MongoStore) AcceptBid(ctx context.Context, id string, bid model.BidEntry, minIncrement float64) (model.Listing, error) {
	filter := bson.M{
		"_id":            id,
		"status":         model.StatusApproved,
		"last_date":      bson.M{"$gt": bid.Timestamp},
		"min_increment":  minIncrement,
		"current_amount": bson.M{"$lte": model.BidThreshold(bid.Amount, minIncrement)},
	}
	update := bson.M{
		"$set":  bson.M{"current_amount": bid.Amount},
		"$push": bson.M{"bids": bid},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l model.Listing
	err := s.listings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Listing{}, fmt.Errorf("accept bid on listing %s: %w", id, marketerrors.ErrBidConflict)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("accept bid on listing %s: %w", id, err)
	}
	return l, nil
}

// SetListingStatus moves a listing to change.To when its status is in change.From
func (s *MongoStore) SetListingStatus(ctx context.Context, id string, change StatusChange) (model.Listing, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$in": change.From}}
	update := bson.M{"$set": bson.M{
		"status":     change.To,
		"updated_at": change.At,
		"updated_by": change.By,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l model.Listing
	err := s.listings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&l)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.Listing{}, fmt.Errorf("set status of listing %s: %w", id, err)
	}

	found, err := s.exists(ctx, s.listings, id)
	if err != nil {
		return model.Listing{}, fmt.Errorf("set status of listing %s: %w", id, err)
	}
	if !found {
		return model.Listing{}, fmt.Errorf("set status of listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return model.Listing{}, fmt.Errorf("set status of listing %s to %s: %w", id, change.To, marketerrors.ErrInvalidTransition)
}

// TopCategories ranks categories by approved listing count
func (s *MongoStore) TopCategories(ctx context.Context, limit int) ([]model.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.StatusApproved}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := s.listings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}

	out := make([]model.CategoryCount, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return out, nil
}
