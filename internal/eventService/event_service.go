package events

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/payment"
	"artisan-market/internal/repository"
	"artisan-market/utils"

	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// EventService manages instructor events, registrations and event checkouts
type EventService struct {
	store   repository.EventStore
	gateway payment.Gateway
	now     func() time.Time
}

// NewEventService creates a new EventService instance
func NewEventService(store repository.EventStore, gateway payment.Gateway) *EventService {
	return &EventService{
		store:   store,
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces time.Now, for deterministic tests
func (s *EventService) WithClock(now func() time.Time) *EventService {
	s.now = now
	return s
}

// Summary is the public view of an event; attendee emails are not exposed
type Summary struct {
	ID string `json:"id"`

	models.EventDetails

	InstructorID    string    `json:"instructor_id"`
	RegisteredCount int       `json:"registered_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func summarize(e models.Event) Summary {
	return Summary{
		ID:              e.ID,
		EventDetails:    e.EventDetails,
		InstructorID:    e.InstructorID,
		RegisteredCount: len(e.Registrations),
		CreatedAt:       e.CreatedAt,
	}
}

func summarizeAll(events []models.Event) []Summary {
	out := make([]Summary, 0, len(events))
	for _, e := range events {
		out = append(out, summarize(e))
	}
	return out
}

// Attendance pairs an event with the caller's registration
type Attendance struct {
	Event        Summary             `json:"event"`
	Registration models.Registration `json:"registration"`
}

// Filter narrows event listings; zero fields are ignored
type Filter struct {
	Type   string   `json:"type"`
	Date   string   `json:"date"`
	MinFee *float64 `json:"min_fee"`
	MaxFee *float64 `json:"max_fee"`
}

// CreateEvent publishes a new event hosted by the calling instructor
func (s *EventService) CreateEvent(ctx context.Context, caller models.Caller, in models.EventDetails) (models.Event, error) {
	if caller.Role != models.KindInstructor {
		return models.Event{}, fmt.Errorf("service: %s cannot host events: %w", caller.Role, marketerrors.ErrForbidden)
	}
	details, err := normalize(in)
	if err != nil {
		return models.Event{}, err
	}

	e := models.Event{
		ID:            utils.GenerateID(),
		EventDetails:  details,
		InstructorID:  caller.Identity,
		Registrations: []models.Registration{},
		CreatedAt:     s.now(),
	}
	if err := s.store.InsertEvent(ctx, e); err != nil {
		return models.Event{}, fmt.Errorf("service: failed to create event for %s: %w", caller.Identity, err)
	}
	return e, nil
}

// normalize trims d and checks every field an event needs
func normalize(d models.EventDetails) (models.EventDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.Duration = strings.TrimSpace(d.Duration)
	d.Place = strings.TrimSpace(d.Place)

	invalid := func(msg string) (models.EventDetails, error) {
		return models.EventDetails{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, msg)
	}
	if d.Name == "" {
		return invalid("name is required")
	}
	eventType, ok := models.ParseEventType(string(d.Type))
	if !ok {
		return invalid("type must be online or offline")
	}
	d.Type = eventType
	if _, err := time.Parse(dateLayout, d.Date); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, d.Time); err != nil {
		return invalid("time must be HH:MM")
	}
	if d.Fee < 0 || math.IsNaN(d.Fee) || math.IsInf(d.Fee, 0) {
		return invalid("fee cannot be negative")
	}
	switch d.Type {
	case models.EventOffline:
		if d.Place == "" {
			return invalid("place is required for offline events")
		}
	case models.EventOnline:
		d.Place = ""
	}
	return d, nil
}

// startsAt is when the event begins, in UTC
func startsAt(d models.EventDetails) (time.Time, error) {
	return time.Parse(dateLayout+" "+timeLayout, d.Date+" "+d.Time)
}

// CountEvents counts all events, for the admin dashboard
func (s *EventService) CountEvents(ctx context.Context) (int64, error) {
	n, err := s.store.CountEvents(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count events: %w", err)
	}
	return n, nil
}

// ListEvents returns every event, newest first
func (s *EventService) ListEvents(ctx context.Context) ([]Summary, error) {
	events, err := s.store.FindEvents(ctx, repository.EventFilter{})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list events: %w", err)
	}
	return summarizeAll(events), nil
}

// GetEvent returns the public view of one event
func (s *EventService) GetEvent(ctx context.Context, id string) (Summary, error) {
	e, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return Summary{}, fmt.Errorf("service: failed to get event %s: %w", id, err)
	}
	return summarize(e), nil
}

// HostedEvents returns the caller's own events with their registrations
func (s *EventService) HostedEvents(ctx context.Context, caller models.Caller) ([]models.Event, error) {
	events, err := s.store.FindEvents(ctx, repository.EventFilter{InstructorID: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list events of %s: %w", caller.Identity, err)
	}
	return events, nil
}

// FilterEvents narrows the listing by type, date and fee range
func (s *EventService) FilterEvents(ctx context.Context, f Filter) ([]Summary, error) {
	filter := repository.EventFilter{Date: strings.TrimSpace(f.Date), MinFee: f.MinFee, MaxFee: f.MaxFee}
	if f.Type != "" {
		t, ok := models.ParseEventType(f.Type)
		if !ok {
			return nil, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "type must be online or offline")
		}
		filter.Type = t
	}
	if filter.Date != "" {
		if _, err := time.Parse(dateLayout, filter.Date); err != nil {
			return nil, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "date must be YYYY-MM-DD")
		}
	}
	if f.MinFee != nil && f.MaxFee != nil && *f.MinFee > *f.MaxFee {
		return nil, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "min_fee cannot exceed max_fee")
	}

	events, err := s.store.FindEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to filter events: %w", err)
	}
	return summarizeAll(events), nil
}

// SearchEvents matches term against event names and descriptions; a blank term matches nothing
func (s *EventService) SearchEvents(ctx context.Context, term string) ([]Summary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Summary{}, nil
	}
	events, err := s.store.FindEvents(ctx, repository.EventFilter{Term: term})
	if err != nil {
		return nil, fmt.Errorf("service: failed to search events: %w", err)
	}
	return summarizeAll(events), nil
}

// Register signs the caller up. Free events are confirmed at once; paid ones
// stay pending until the checkout is verified.
func (s *EventService) Register(ctx context.Context, caller models.Caller, id string) (Attendance, error) {
	if caller.Role != models.KindBuyer {
		return Attendance{}, fmt.Errorf("service: %s cannot attend events: %w", caller.Role, marketerrors.ErrForbidden)
	}
	e, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return Attendance{}, fmt.Errorf("service: failed to get event %s: %w", id, err)
	}
	if err := s.checkUpcoming(e); err != nil {
		return Attendance{}, err
	}

	reg := models.Registration{
		UserEmail:     caller.Identity,
		RegisteredAt:  s.now(),
		PaymentStatus: models.RegistrationPending,
	}
	if e.Fee == 0 {
		reg.PaymentStatus = models.RegistrationFree
	}
	updated, err := s.store.AddRegistration(ctx, id, reg)
	if err != nil {
		return Attendance{}, fmt.Errorf("service: failed to register %s for event %s: %w", caller.Identity, id, err)
	}
	return Attendance{Event: summarize(updated), Registration: reg}, nil
}

func (s *EventService) checkUpcoming(e models.Event) error {
	start, err := startsAt(e.EventDetails)
	if err != nil {
		utils.Warn("Event has unparseable schedule", map[string]any{"event_id": e.ID, "date": e.Date, "time": e.Time})
		return nil
	}
	if !start.After(s.now()) {
		return marketerrors.WithDetail(marketerrors.ErrInvalidInput, "event has already started")
	}
	return nil
}

// CancelRegistration removes the caller from an event
func (s *EventService) CancelRegistration(ctx context.Context, caller models.Caller, id string) (Summary, error) {
	e, err := s.store.RemoveRegistration(ctx, id, caller.Identity)
	if err != nil {
		return Summary{}, fmt.Errorf("service: failed to cancel registration of %s for event %s: %w", caller.Identity, id, err)
	}
	return summarize(e), nil
}

// MyRegistrations lists the events the caller signed up for with their registration
func (s *EventService) MyRegistrations(ctx context.Context, caller models.Caller) ([]Attendance, error) {
	events, err := s.store.FindEvents(ctx, repository.EventFilter{Registrant: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list registrations of %s: %w", caller.Identity, err)
	}

	out := make([]Attendance, 0, len(events))
	for _, e := range events {
		reg, _ := e.RegistrationOf(caller.Identity)
		out = append(out, Attendance{Event: summarize(e), Registration: reg})
	}
	return out, nil
}

// UpdateEvent applies patch to an event the caller hosts
func (s *EventService) UpdateEvent(ctx context.Context, caller models.Caller, id string, patch models.EventPatch) (models.Event, error) {
	e, err := s.owned(ctx, caller, id)
	if err != nil {
		return models.Event{}, err
	}
	details, err := normalize(patch.Apply(e.EventDetails))
	if err != nil {
		return models.Event{}, err
	}

	updated, err := s.store.UpdateEventDetails(ctx, id, details, s.now())
	if err != nil {
		return models.Event{}, fmt.Errorf("service: failed to update event %s: %w", id, err)
	}
	return updated, nil
}

// DeleteEvent removes an event the caller hosts
func (s *EventService) DeleteEvent(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete event %s: %w", id, err)
	}
	return nil
}

func (s *EventService) owned(ctx context.Context, caller models.Caller, id string) (models.Event, error) {
	e, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("service: failed to get event %s: %w", id, err)
	}
	if caller.Role != models.KindInstructor || e.InstructorID != caller.Identity {
		return models.Event{}, fmt.Errorf("service: %s does not host event %s: %w", caller.Identity, id, marketerrors.ErrForbidden)
	}
	return e, nil
}

// CreateEventSession opens a hosted checkout for the fee of a paid event
func (s *EventService) CreateEventSession(ctx context.Context, caller models.Caller, id string) (payment.Session, error) {
	if caller.Role != models.KindBuyer {
		return payment.Session{}, fmt.Errorf("service: %s cannot attend events: %w", caller.Role, marketerrors.ErrForbidden)
	}
	e, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return payment.Session{}, fmt.Errorf("service: failed to get event %s: %w", id, err)
	}
	if e.Fee <= 0 {
		return payment.Session{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "event is free, register directly")
	}
	if err := s.checkUpcoming(e); err != nil {
		return payment.Session{}, err
	}
	if reg, ok := e.RegistrationOf(caller.Identity); ok && reg.PaymentID != "" {
		return payment.Session{}, fmt.Errorf("service: %s already paid for event %s: %w", caller.Identity, id, marketerrors.ErrAlreadyRegistered)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Items: []payment.LineItem{{
			Name:      e.Name,
			UnitPrice: decimal.NewFromFloat(e.Fee),
			Quantity:  1,
			Image:     e.Poster,
		}},
		CustomerEmail: caller.Identity,
		Metadata: map[string]string{
			payment.MetaBuyer: caller.Identity,
			payment.MetaKind:  payment.KindEvent,
			payment.MetaEvent: e.ID,
		},
	})
	if err != nil {
		return payment.Session{}, fmt.Errorf("service: failed to open checkout for event %s: %w", id, err)
	}
	return session, nil
}

// VerifyEventPayment records the registration paid for by a checkout session.
// Verifying the same session again returns the recorded registration.
func (s *EventService) VerifyEventPayment(ctx context.Context, caller models.Caller, sessionID string) (Attendance, error) {
	if sessionID == "" {
		return Attendance{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "session_id is required")
	}

	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return Attendance{}, fmt.Errorf("service: failed to fetch checkout %s: %w", sessionID, err)
	}
	eventID := session.Metadata[payment.MetaEvent]
	if session.Metadata[payment.MetaBuyer] != caller.Identity || session.Metadata[payment.MetaKind] != payment.KindEvent || eventID == "" {
		return Attendance{}, fmt.Errorf("service: %s verifying checkout %s: %w", caller.Identity, sessionID, marketerrors.ErrForbidden)
	}
	if !session.Paid {
		return Attendance{}, fmt.Errorf("service: checkout %s is %q: %w", sessionID, session.PaymentStatus, marketerrors.ErrPaymentIncomplete)
	}

	e, err := s.store.ConfirmPaidRegistration(ctx, eventID, models.Registration{
		UserEmail:     caller.Identity,
		RegisteredAt:  s.now(),
		PaymentStatus: models.RegistrationCompleted,
		PaymentID:     sessionID,
	})
	if err != nil {
		return Attendance{}, fmt.Errorf("service: failed to record payment %s for event %s: %w", sessionID, eventID, err)
	}

	reg, ok := e.RegistrationOf(caller.Identity)
	if !ok || reg.PaymentID != sessionID {
		return Attendance{}, fmt.Errorf("service: registration for payment %s missing from event %s", sessionID, eventID)
	}
	utils.Info("Event registration paid", map[string]any{"event_id": eventID, "user": caller.Identity, "session_id": sessionID})
	return Attendance{Event: summarize(e), Registration: reg}, nil
}
