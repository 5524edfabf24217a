package models

import (
	"strings"
	"time"
)

// PrincipalKind is the role a registered account plays in the market
type PrincipalKind string

const (
	KindBuyer      PrincipalKind = "buyer"
	KindSeller     PrincipalKind = "seller"
	KindInstructor PrincipalKind = "instructor"
	KindAdmin      PrincipalKind = "admin"
)

// ParsePrincipalKind converts a path or claim value into a known kind
func ParsePrincipalKind(s string) (PrincipalKind, bool) {
	switch k := PrincipalKind(strings.ToLower(s)); k {
	case KindBuyer, KindSeller, KindInstructor, KindAdmin:
		return k, true
	}
	return "", false
}

// Principal represents a registered account of any kind
type Principal struct {
	ID           string        `bson:"_id" json:"id"`
	Kind         PrincipalKind `bson:"kind" json:"kind"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	FirstName    string        `bson:"first_name" json:"first_name"`
	LastName     string        `bson:"last_name" json:"last_name"`
	Mobile       string        `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Blocked      bool          `bson:"blocked" json:"blocked"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}

// Identity is the token subject: instructors are keyed by id, everyone else by email.
func (p Principal) Identity() string {
	if p.Kind == KindInstructor {
		return p.ID
	}
	return p.Email
}

// DisplayName joins first and last name
func (p Principal) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ProfileUpdate changes the editable profile fields; nil fields are left alone
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Mobile    *string
}

// Apply returns p with the update's fields set
func (u ProfileUpdate) Apply(p Principal) Principal {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Mobile != nil {
		p.Mobile = *u.Mobile
	}
	return p
}

// Caller is the authenticated principal behind a request
type Caller struct {
	Identity string        `json:"identity"`
	Role     PrincipalKind `json:"role"`
}
