package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func eventQuery(f EventFilter) bson.M {
	q := bson.M{}
	if f.InstructorID != "" {
		q["instructor_id"] = f.InstructorID
	}
	if f.Registrant != "" {
		q["registered_users.user_email"] = f.Registrant
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Date != "" {
		q["date"] = f.Date
	}
	fee := bson.M{}
	if f.MinFee != nil {
		fee["$gte"] = *f.MinFee
	}
	if f.MaxFee != nil {
		fee["$lte"] = *f.MaxFee
	}
	if len(fee) > 0 {
		q["fee"] = fee
	}
	if f.Term != "" {
		pattern := containsPattern(f.Term)
		q["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	return q
}

// containsPattern matches term literally, ignoring case
func containsPattern(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// InsertEvent stores a new event
func (s *MongoStore) InsertEvent(ctx context.Context, e model.Event) error {
	// $push needs an array, never null
	if e.Registrations == nil {
		e.Registrations = []model.Registration{}
	}
	if _, err := s.events.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event %s: %w", e.ID, err)
	}
	return nil
}

// GetEvent returns an event by id
func (s *MongoStore) GetEvent(ctx context.Context, id string) (model.Event, error) {
	var e model.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Event{}, fmt.Errorf("get event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	if err != nil {
		return model.Event{}, fmt.Errorf("get event %s: %w", id, err)
	}
	return e, nil
}

// FindEvents returns events matching filter, newest first
func (s *MongoStore) FindEvents(ctx context.Context, filter EventFilter) ([]model.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.events.Find(ctx, eventQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	out := make([]model.Event, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

// CountEvents counts all events
func (s *MongoStore) CountEvents(ctx context.Context) (int64, error) {
	n, err := s.events.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// UpdateEventDetails replaces the editable fields of an event
func (s *MongoStore) UpdateEventDetails(ctx context.Context, id string, details model.EventDetails, at time.Time) (model.Event, error) {
	update := bson.M{"$set": bson.M{
		"name":        details.Name,
		"description": details.Description,
		"type":        details.Type,
		"date":        details.Date,
		"time":        details.Time,
		"fee":         details.Fee,
		"duration":    details.Duration,
		"place":       details.Place,
		"poster":      details.Poster,
		"updated_at":  at,
	}}
	return s.modifyEvent(ctx, "update event", bson.M{"_id": id}, update, id)
}

// DeleteEvent removes an event
func (s *MongoStore) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete event %s: %w", id, marketerrors.ErrEventNotFound)
	}
	return nil
}

// AddRegistration appends reg unless its user is already registered
func (s *MongoStore) AddRegistration(ctx context.Context, id string, reg model.Registration) (model.Event, error) {
	filter := bson.M{"_id": id, "registered_users.user_email": bson.M{"$ne": reg.UserEmail}}
	update := bson.M{"$push": bson.M{"registered_users": reg}}

	e, err := s.modifyEvent(ctx, "register for event", filter, update, id)
	if errors.Is(err, errEventUnchanged) {
		return model.Event{}, fmt.Errorf("register %s for event %s: %w", reg.UserEmail, id, marketerrors.ErrAlreadyRegistered)
	}
	return e, err
}

// RemoveRegistration drops the registration of email
func (s *MongoStore) RemoveRegistration(ctx context.Context, id, email string) (model.Event, error) {
	filter := bson.M{"_id": id, "registered_users.user_email": email}
	update := bson.M{"$pull": bson.M{"registered_users": bson.M{"user_email": email}}}

	e, err := s.modifyEvent(ctx, "cancel registration for event", filter, update, id)
	if errors.Is(err, errEventUnchanged) {
		return model.Event{}, fmt.Errorf("cancel registration of %s for event %s: %w", email, id, marketerrors.ErrNotRegistered)
	}
	return e, err
}

// ConfirmPaidRegistration records a paid registration once per payment id.
// Both writes require the payment id to be absent from the event.
func (s *MongoStore) ConfirmPaidRegistration(ctx context.Context, id string, reg model.Registration) (model.Event, error) {
	pending := bson.M{"user_email": reg.UserEmail, "payment_id": ""}
	unpaid := bson.M{
		"_id":                         id,
		"registered_users.payment_id": bson.M{"$ne": reg.PaymentID},
		"registered_users":            bson.M{"$elemMatch": pending},
	}
	complete := bson.M{"$set": bson.M{
		"registered_users.$[r].payment_id":     reg.PaymentID,
		"registered_users.$[r].payment_status": reg.PaymentStatus,
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{Filters: []any{
			bson.M{"r.user_email": reg.UserEmail, "r.payment_id": ""},
		}})

	var e model.Event
	err := s.events.FindOneAndUpdate(ctx, unpaid, complete, opts).Decode(&e)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.Event{}, fmt.Errorf("confirm registration for event %s: %w", id, err)
	}

	absent := bson.M{
		"_id":                         id,
		"registered_users.payment_id": bson.M{"$ne": reg.PaymentID},
		"registered_users.user_email": bson.M{"$ne": reg.UserEmail},
	}
	e, err = s.modifyEvent(ctx, "confirm registration for event", absent, bson.M{"$push": bson.M{"registered_users": reg}}, id)
	if !errors.Is(err, errEventUnchanged) {
		return e, err
	}

	e, err = s.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	if e.HasPayment(reg.PaymentID) {
		return e, nil
	}
	return model.Event{}, fmt.Errorf("confirm registration of %s for event %s: %w", reg.UserEmail, id, marketerrors.ErrAlreadyRegistered)
}

// errEventUnchanged means the event exists but the update filter did not match
var errEventUnchanged = errors.New("event unchanged")

// modifyEvent runs one conditional findAndModify. When nothing matched it
// reports ErrEventNotFound for a missing event and errEventUnchanged otherwise.
func (s *MongoStore) modifyEvent(ctx context.Context, op string, filter, update bson.M, id string) (model.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e model.Event
	err := s.events.FindOneAndUpdate(ctx, filter, update, opts).Decode(&e)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.Event{}, fmt.Errorf("%s %s: %w", op, id, err)
	}

	found, err := s.exists(ctx, s.events, id)
	if err != nil {
		return model.Event{}, fmt.Errorf("%s %s: %w", op, id, err)
	}
	if !found {
		return model.Event{}, fmt.Errorf("%s %s: %w", op, id, marketerrors.ErrEventNotFound)
	}
	return model.Event{}, errEventUnchanged
}
