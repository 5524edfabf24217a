package helpers

import (
	"fmt"
	"time"

	bidding "artisan-market/internal/biddingService"
	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// ListingRequest binds both multipart forms and JSON bodies
type ListingRequest struct {
	Title        string  `form:"title" json:"title"`
	Description  string  `form:"description" json:"description"`
	Category     string  `form:"category" json:"category"`
	Condition    string  `form:"condition" json:"condition"`
	Dimensions   string  `form:"dimensions" json:"dimensions"`
	Material     string  `form:"material" json:"material"`
	BaseAmount   float64 `form:"base_amount" json:"base_amount"`
	MinIncrement float64 `form:"min_increment" json:"min_increment"`
	LastDate     string  `form:"last_date" json:"last_date"`
}

// lastDateLayouts are tried in order; browsers post datetime-local without a zone
var lastDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05"}

// ToInput validates the date and converts the request into a models.ListingInput
func (r ListingRequest) ToInput(image string) (models.ListingInput, error) {
	var (
		last time.Time
		err  error
	)
	for _, layout := range lastDateLayouts {
		if last, err = time.Parse(layout, r.LastDate); err == nil {
			break
		}
	}
	if err != nil {
		return models.ListingInput{}, marketerrors.WithDetail(marketerrors.ErrInvalidListing,
			fmt.Sprintf("last_date %q is not a valid date", r.LastDate))
	}

	return models.ListingInput{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Condition:    r.Condition,
		Dimensions:   r.Dimensions,
		Material:     r.Material,
		BaseAmount:   r.BaseAmount,
		MinIncrement: r.MinIncrement,
		LastDate:     last,
		Image:        image,
	}, nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
}

// ProfileRequest fields left out of the body are not changed
type ProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Mobile    *string `json:"mobile"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProductRequest binds both multipart forms and JSON bodies
type ProductRequest struct {
	Name        string  `form:"name" json:"name"`
	Description string  `form:"description" json:"description"`
	Category    string  `form:"category" json:"category"`
	Price       float64 `form:"price" json:"price"`
	Quantity    int     `form:"quantity" json:"quantity"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type DashboardStats struct {
	Principals map[models.PrincipalKind]int64 `json:"principals"`
	Products   int64                          `json:"products"`
	Orders     int64                          `json:"orders"`
	Listings   bidding.ListingStats           `json:"listings"`
	Events     int64                          `json:"events"`
}

// EventRequest binds both multipart forms and JSON bodies
type EventRequest struct {
	Name        string  `form:"name" json:"name"`
	Description string  `form:"description" json:"description"`
	Type        string  `form:"type" json:"type"`
	Date        string  `form:"date" json:"date"`
	Time        string  `form:"time" json:"time"`
	Fee         float64 `form:"fee" json:"fee"`
	Duration    string  `form:"duration" json:"duration"`
	Place       string  `form:"place" json:"place"`
}

// ToDetails converts the request into models.EventDetails
func (r EventRequest) ToDetails(poster string) models.EventDetails {
	return models.EventDetails{
		Name:        r.Name,
		Description: r.Description,
		Type:        models.EventType(r.Type),
		Date:        r.Date,
		Time:        r.Time,
		Fee:         r.Fee,
		Duration:    r.Duration,
		Place:       r.Place,
		Poster:      poster,
	}
}

// EventPatchRequest fields left out of the body are not changed
type EventPatchRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Fee         *float64 `json:"fee"`
	Duration    *string  `json:"duration"`
	Place       *string  `json:"place"`
}

func (r EventPatchRequest) ToPatch() models.EventPatch {
	return models.EventPatch{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Date:        r.Date,
		Time:        r.Time,
		Fee:         r.Fee,
		Duration:    r.Duration,
		Place:       r.Place,
	}
}

// ComplaintRequest binds both multipart forms and JSON bodies
type ComplaintRequest struct {
	TargetKind  string `form:"target_kind" json:"target_kind"`
	TargetID    string `form:"target_id" json:"target_id"`
	Subject     string `form:"subject" json:"subject"`
	Description string `form:"description" json:"description"`
	Severity    string `form:"severity" json:"severity"`
}

func (r ComplaintRequest) ToInput(attachment string) models.ComplaintInput {
	return models.ComplaintInput{
		TargetKind:  r.TargetKind,
		TargetID:    r.TargetID,
		Subject:     r.Subject,
		Description: r.Description,
		Severity:    r.Severity,
		Attachment:  attachment,
	}
}

type ComplaintStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Response string `json:"admin_response"`
}
