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

func complaintQuery(f ComplaintFilter) bson.M {
	q := bson.M{}
	if f.Author != "" {
		q["author.identity"] = f.Author
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Severity != "" {
		q["severity"] = f.Severity
	}
	return q
}

// InsertComplaint stores a new complaint
func (s *MongoStore) InsertComplaint(ctx context.Context, c model.Complaint) error {
	if _, err := s.complaints.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert complaint %s: %w", c.ID, err)
	}
	return nil
}

// GetComplaint returns a complaint by id
func (s *MongoStore) GetComplaint(ctx context.Context, id string) (model.Complaint, error) {
	var c model.Complaint
	err := s.complaints.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Complaint{}, fmt.Errorf("get complaint %s: %w", id, marketerrors.ErrComplaintNotFound)
	}
	if err != nil {
		return model.Complaint{}, fmt.Errorf("get complaint %s: %w", id, err)
	}
	return c, nil
}

// FindComplaints returns complaints matching filter, newest first
func (s *MongoStore) FindComplaints(ctx context.Context, filter ComplaintFilter) ([]model.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.complaints.Find(ctx, complaintQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}

	out := make([]model.Complaint, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return out, nil
}

// SetComplaintStatus moves a complaint to change.To when its status is in change.From
func (s *MongoStore) SetComplaintStatus(ctx context.Context, id string, change ComplaintStatusChange) (model.Complaint, error) {
	set := bson.M{
		"status":     change.To,
		"updated_at": change.At,
		"updated_by": change.By,
	}
	if change.Response != "" {
		set["admin_response"] = change.Response
	}
	filter := bson.M{"_id": id, "status": bson.M{"$in": change.From}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c model.Complaint
	err := s.complaints.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&c)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.Complaint{}, fmt.Errorf("set status of complaint %s: %w", id, err)
	}

	found, err := s.exists(ctx, s.complaints, id)
	if err != nil {
		return model.Complaint{}, fmt.Errorf("set status of complaint %s: %w", id, err)
	}
	if !found {
		return model.Complaint{}, fmt.Errorf("set status of complaint %s: %w", id, marketerrors.ErrComplaintNotFound)
	}
	return model.Complaint{}, fmt.Errorf("set status of complaint %s to %s: %w", id, change.To, marketerrors.ErrInvalidTransition)
}
