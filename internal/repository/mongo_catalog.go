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

// InsertProduct stores a new product
func (s *MongoStore) InsertProduct(ctx context.Context, p model.Product) error {
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return nil
}

// GetProduct returns a product by id
func (s *MongoStore) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, marketerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// ListProducts returns catalog entries matching filter, newest first
func (s *MongoStore) ListProducts(ctx context.Context, f ProductFilter) ([]model.Product, error) {
	filter := bson.M{}
	if f.SellerEmail != "" {
		filter["seller_email"] = f.SellerEmail
	}
	switch f.Kind {
	case "":
	case model.ItemProduct:
		// documents written before kinds existed have no kind field
		filter["kind"] = bson.M{"$ne": model.ItemMaterial}
	default:
		filter["kind"] = f.Kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]model.Product, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

// CountProducts counts catalog entries
func (s *MongoStore) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// DecrementStock lowers quantity by qty with a conditional update on the remaining stock
func (s *MongoStore) DecrementStock(ctx context.Context, id string, qty int) error {
	res, err := s.products.UpdateOne(ctx,
		bson.M{"_id": id, "quantity": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"quantity": -qty}},
	)
	if err != nil {
		return fmt.Errorf("decrement stock of %s: %w", id, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	found, err := s.exists(ctx, s.products, id)
	if err != nil {
		return fmt.Errorf("decrement stock of %s: %w", id, err)
	}
	if !found {
		return fmt.Errorf("decrement stock of %s: %w", id, marketerrors.ErrProductNotFound)
	}
	return fmt.Errorf("decrement stock of %s: %w", id, marketerrors.ErrOutOfStock)
}

// IncrementStock returns qty units to a product, undoing a DecrementStock
func (s *MongoStore) IncrementStock(ctx context.Context, id string, qty int) error {
	res, err := s.products.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"quantity": qty}})
	if err != nil {
		return fmt.Errorf("increment stock of %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("increment stock of %s: %w", id, marketerrors.ErrProductNotFound)
	}
	return nil
}

// AddToBasket adds productID to the basket once
func (s *MongoStore) AddToBasket(ctx context.Context, kind model.BasketKind, owner, productID string) error {
	_, err := s.baskets.UpdateOne(ctx,
		bson.M{"_id": model.BasketID(kind, owner)},
		bson.M{
			"$setOnInsert": bson.M{"kind": kind, "owner": owner},
			"$addToSet":    bson.M{"product_ids": productID},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("add %s to %s of %s: %w", productID, kind, owner, err)
	}
	return nil
}

// RemoveFromBasket drops productID from the basket
func (s *MongoStore) RemoveFromBasket(ctx context.Context, kind model.BasketKind, owner, productID string) error {
	_, err := s.baskets.UpdateOne(ctx,
		bson.M{"_id": model.BasketID(kind, owner)},
		bson.M{"$pull": bson.M{"product_ids": productID}},
	)
	if err != nil {
		return fmt.Errorf("remove %s from %s of %s: %w", productID, kind, owner, err)
	}
	return nil
}

// GetBasket returns the product ids in the basket
func (s *MongoStore) GetBasket(ctx context.Context, kind model.BasketKind, owner string) ([]string, error) {
	var b model.Basket
	err := s.baskets.FindOne(ctx, bson.M{"_id": model.BasketID(kind, owner)}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s of %s: %w", kind, owner, err)
	}
	if b.ProductIDs == nil {
		return []string{}, nil
	}
	return b.ProductIDs, nil
}

// ClearBasket empties the basket
func (s *MongoStore) ClearBasket(ctx context.Context, kind model.BasketKind, owner string) error {
	if _, err := s.baskets.DeleteOne(ctx, bson.M{"_id": model.BasketID(kind, owner)}); err != nil {
		return fmt.Errorf("clear %s of %s: %w", kind, owner, err)
	}
	return nil
}
