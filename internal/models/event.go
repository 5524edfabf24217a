package models

import "time"

// EventType tells whether an event happens online or at a venue
type EventType string

const (
	EventOnline  EventType = "online"
	EventOffline EventType = "offline"
)

// ParseEventType validates a requested event type
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(s); t {
	case EventOnline, EventOffline:
		return t, true
	}
	return "", false
}

// Registration payment states
const (
	RegistrationPending   = "pending"
	RegistrationFree      = "free"
	RegistrationCompleted = "completed"
)

// EventDetails are the instructor-editable fields of an event
type EventDetails struct {
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Type        EventType `bson:"type" json:"type"`
	Date        string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string    `bson:"time" json:"time"` // HH:MM
	Fee         float64   `bson:"fee" json:"fee"`
	Duration    string    `bson:"duration" json:"duration"`
	Place       string    `bson:"place,omitempty" json:"place,omitempty"`
	Poster      string    `bson:"poster,omitempty" json:"poster,omitempty"`
}

// Registration records one attendee of an event
type Registration struct {
	UserEmail     string    `bson:"user_email" json:"user_email"`
	RegisteredAt  time.Time `bson:"registered_at" json:"registered_at"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	PaymentID     string    `bson:"payment_id" json:"payment_id,omitempty"`
}

// Event is a workshop or class hosted by an instructor
type Event struct {
	ID string `bson:"_id" json:"id"`

	EventDetails `bson:",inline"`

	InstructorID  string         `bson:"instructor_id" json:"instructor_id"`
	Registrations []Registration `bson:"registered_users" json:"registered_users"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RegistrationOf returns the registration of email, if any
func (e Event) RegistrationOf(email string) (Registration, bool) {
	for _, r := range e.Registrations {
		if r.UserEmail == email {
			return r, true
		}
	}
	return Registration{}, false
}

// HasPayment reports whether a registration was recorded for paymentID
func (e Event) HasPayment(paymentID string) bool {
	for _, r := range e.Registrations {
		if r.PaymentID == paymentID {
			return true
		}
	}
	return false
}

// EventPatch changes the listed fields of an event; nil fields are left alone
type EventPatch struct {
	Name        *string
	Description *string
	Type        *string
	Date        *string
	Time        *string
	Fee         *float64
	Duration    *string
	Place       *string
}

// Apply returns d with the patch's fields set
func (p EventPatch) Apply(d EventDetails) EventDetails {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&d.Name, p.Name)
	set(&d.Description, p.Description)
	set(&d.Date, p.Date)
	set(&d.Time, p.Time)
	set(&d.Duration, p.Duration)
	set(&d.Place, p.Place)
	if p.Type != nil {
		d.Type = EventType(*p.Type)
	}
	if p.Fee != nil {
		d.Fee = *p.Fee
	}
	return d
}
