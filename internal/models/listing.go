package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the moderation state of an auction listing
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

// ParseListingStatus validates a status from a query or request body
func ParseListingStatus(s string) (ListingStatus, bool) {
	switch st := ListingStatus(strings.ToLower(s)); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

// Creator identifies who originated a listing. Exactly one owner is recorded:
// an instructor by id, or a buyer or seller requester by email.
type Creator struct {
	Kind     PrincipalKind `bson:"kind" json:"kind"`
	Identity string        `bson:"identity" json:"identity"`
}

func InstructorCreator(id string) Creator { return Creator{Kind: KindInstructor, Identity: id} }

func BuyerRequester(email string) Creator { return Creator{Kind: KindBuyer, Identity: email} }

func SellerRequester(email string) Creator { return Creator{Kind: KindSeller, Identity: email} }

// Is reports whether identity owns the listing
func (c Creator) Is(identity string) bool {
	return c.Identity != "" && c.Identity == identity
}

// BidEntry is one accepted bid in a listing's history
type BidEntry struct {
	ID             string        `bson:"id" json:"id"`
	BidderIdentity string        `bson:"bidder_identity" json:"bidder_identity"`
	BidderName     string        `bson:"bidder_name" json:"bidder_name"`
	BidderRole     PrincipalKind `bson:"bidder_role" json:"bidder_role"`
	Amount         float64       `bson:"amount" json:"amount"`
	Timestamp      time.Time     `bson:"timestamp" json:"timestamp"`
}

// Listing represents an auction item
type Listing struct {
	ID            string        `bson:"_id" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	Category      string        `bson:"category" json:"category"`
	Condition     string        `bson:"condition" json:"condition"`
	Dimensions    string        `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Material      string        `bson:"material,omitempty" json:"material,omitempty"`
	BaseAmount    float64       `bson:"base_amount" json:"base_amount"`
	CurrentAmount float64       `bson:"current_amount" json:"current_amount"`
	MinIncrement  float64       `bson:"min_increment" json:"min_increment"`
	LastDate      time.Time     `bson:"last_date" json:"last_date"`
	Status        ListingStatus `bson:"status" json:"status"`
	Creator       Creator       `bson:"creator" json:"creator"`
	Bids          []BidEntry    `bson:"bids" json:"bids"`
	Image         string        `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy     string        `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// ListingInput carries the creator-supplied fields of a new listing
type ListingInput struct {
	Title        string
	Description  string
	Category     string
	Condition    string
	Dimensions   string
	Material     string
	BaseAmount   float64
	MinIncrement float64
	LastDate     time.Time
	Image        string
}

// Open reports whether the listing accepts bids at now
func (l Listing) Open(now time.Time) bool {
	return l.Status == StatusApproved && l.LastDate.After(now)
}

// Ended reports whether the closing date has passed
func (l Listing) Ended(now time.Time) bool {
	return !l.LastDate.After(now)
}

// MinimumNextBid is the smallest amount the next bid may carry
func (l Listing) MinimumNextBid() decimal.Decimal {
	return decimal.NewFromFloat(l.CurrentAmount).Add(decimal.NewFromFloat(l.MinIncrement))
}

// WinningBid returns the highest bid, earliest timestamp first on ties
func (l Listing) WinningBid() (BidEntry, bool) {
	if len(l.Bids) == 0 {
		return BidEntry{}, false
	}
	winning := l.Bids[0]
	for _, b := range l.Bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.Timestamp.Before(winning.Timestamp)) {
			winning = b
		}
	}
	return winning, true
}

// HasBidder reports whether identity placed at least one bid
func (l Listing) HasBidder(identity string) bool {
	for _, b := range l.Bids {
		if b.BidderIdentity == identity {
			return true
		}
	}
	return false
}

// HighestBidBy returns identity's largest bid on the listing
func (l Listing) HighestBidBy(identity string) (BidEntry, bool) {
	var (
		best  BidEntry
		found bool
	)
	for _, b := range l.Bids {
		if b.BidderIdentity != identity {
			continue
		}
		if !found || b.Amount > best.Amount {
			best, found = b, true
		}
	}
	return best, found
}

// BidHistory returns a copy of the bids sorted by amount, highest first
func (l Listing) BidHistory() []BidEntry {
	history := append([]BidEntry(nil), l.Bids...)
	sort.SliceStable(history, func(i, j int) bool { return history[i].Amount > history[j].Amount })
	return history
}

// BidThreshold is the largest current amount that still admits amount given
// the listing's increment. Stores use it as the compare-and-swap predicate.
func BidThreshold(amount, minIncrement float64) float64 {
	return decimal.NewFromFloat(amount).Sub(decimal.NewFromFloat(minIncrement)).InexactFloat64()
}

// CategoryCount is an aggregate of approved listings per category
type CategoryCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// Invoice summarizes the settlement of a finished auction
type Invoice struct {
	ListingID      string    `json:"listing_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Condition      string    `json:"condition"`
	EndDate        time.Time `json:"end_date"`
	FinalAmount    float64   `json:"final_amount"`
	FeeRate        float64   `json:"fee_rate"`
	PlatformFee    float64   `json:"platform_fee"`
	TotalAmount    float64   `json:"total_amount"`
	WinnerIdentity string    `json:"winner_identity"`
	WinnerName     string    `json:"winner_name"`
	SellerIdentity string    `json:"seller_identity"`
	SellerName     string    `json:"seller_name"`
	IssuedAt       time.Time `json:"issued_at"`
}
