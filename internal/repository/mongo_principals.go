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

// CreatePrincipal registers an account; the (kind, email) index rejects duplicates
func (s *MongoStore) CreatePrincipal(ctx context.Context, p model.Principal) error {
	_, err := s.principals.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("create %s %s: %w", p.Kind, p.Email, marketerrors.ErrDuplicatePrincipal)
	}
	if err != nil {
		return fmt.Errorf("create %s %s: %w", p.Kind, p.Email, err)
	}
	return nil
}

func (s *MongoStore) findPrincipal(ctx context.Context, filter bson.M, what string) (model.Principal, error) {
	var p model.Principal
	err := s.principals.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Principal{}, fmt.Errorf("%s: %w", what, marketerrors.ErrPrincipalNotFound)
	}
	if err != nil {
		return model.Principal{}, fmt.Errorf("%s: %w", what, err)
	}
	return p, nil
}

// GetPrincipal returns an account by id
func (s *MongoStore) GetPrincipal(ctx context.Context, id string) (model.Principal, error) {
	return s.findPrincipal(ctx, bson.M{"_id": id}, "get principal "+id)
}

// FindPrincipalByEmail returns the account of kind registered with email
func (s *MongoStore) FindPrincipalByEmail(ctx context.Context, kind model.PrincipalKind, email string) (model.Principal, error) {
	return s.findPrincipal(ctx, bson.M{"kind": kind, "email": email}, fmt.Sprintf("find %s %s", kind, email))
}

// ListPrincipals returns all accounts of kind ordered by creation time
func (s *MongoStore) ListPrincipals(ctx context.Context, kind model.PrincipalKind) ([]model.Principal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.principals.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s principals: %w", kind, err)
	}

	out := make([]model.Principal, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s principals: %w", kind, err)
	}
	return out, nil
}

// CountPrincipals counts accounts of kind; an empty kind counts all
func (s *MongoStore) CountPrincipals(ctx context.Context, kind model.PrincipalKind) (int64, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	n, err := s.principals.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s principals: %w", kind, err)
	}
	return n, nil
}

// SetBlocked bans or unbans an account
func (s *MongoStore) SetBlocked(ctx context.Context, kind model.PrincipalKind, id string, blocked bool) error {
	res, err := s.principals.UpdateOne(ctx,
		bson.M{"_id": id, "kind": kind},
		bson.M{"$set": bson.M{"blocked": blocked}},
	)
	if err != nil {
		return fmt.Errorf("set blocked on %s %s: %w", kind, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set blocked on %s %s: %w", kind, id, marketerrors.ErrPrincipalNotFound)
	}
	return nil
}

// UpdateProfile applies update to the account with id
func (s *MongoStore) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) (model.Principal, error) {
	set := bson.M{}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Mobile != nil {
		set["mobile"] = *update.Mobile
	}
	if len(set) == 0 {
		return s.GetPrincipal(ctx, id)
	}

	var p model.Principal
	err := s.principals.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Principal{}, fmt.Errorf("update profile %s: %w", id, marketerrors.ErrPrincipalNotFound)
	}
	if err != nil {
		return model.Principal{}, fmt.Errorf("update profile %s: %w", id, err)
	}
	return p, nil
}
