package bidding

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/internal/repository"
	"artisan-market/utils"

	"github.com/shopspring/decimal"
)

const (
	defaultFeeRate   = 0.05
	topCategoryLimit = 5
)

// NameResolver turns identities into display names
type NameResolver interface {
	DisplayName(ctx context.Context, identity string) string
	DisplayNameFor(ctx context.Context, kind models.PrincipalKind, identity string) string
}

// Option customizes a BiddingService
type Option func(*BiddingService)

// WithClock replaces time.Now, for deterministic tests
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) { s.now = now }
}

// WithFeeRate sets the platform fee applied to invoices
func WithFeeRate(rate float64) Option {
	return func(s *BiddingService) { s.feeRate = decimal.NewFromFloat(rate) }
}

// BiddingService defines the business logic for auction listings and bids
type BiddingService struct {
	repo    repository.ListingStore
	names   NameResolver
	now     func() time.Time
	feeRate decimal.Decimal
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.ListingStore, names NameResolver, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:    repo,
		names:   names,
		now:     func() time.Time { return time.Now().UTC() },
		feeRate: decimal.NewFromFloat(defaultFeeRate),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BidResult is returned after an accepted bid
type BidResult struct {
	CurrentAmount float64 `json:"current_amount"`
	BidderName    string  `json:"bidder_name"`
	TotalBids     int     `json:"total_bids"`
}

// CreateListing stores a new pending listing owned by caller
func (s *BiddingService) CreateListing(ctx context.Context, caller models.Caller, in models.ListingInput) (models.Listing, error) {
	creator, err := creatorFor(caller)
	if err != nil {
		return models.Listing{}, err
	}

	now := s.now()
	if err := validateListing(in, now); err != nil {
		return models.Listing{}, err
	}

	listing := models.Listing{
		ID:            utils.GenerateID(),
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Category:      strings.TrimSpace(in.Category),
		Condition:     strings.TrimSpace(in.Condition),
		Dimensions:    strings.TrimSpace(in.Dimensions),
		Material:      strings.TrimSpace(in.Material),
		BaseAmount:    in.BaseAmount,
		CurrentAmount: in.BaseAmount,
		MinIncrement:  in.MinIncrement,
		LastDate:      in.LastDate.UTC(),
		Status:        models.StatusPending,
		Creator:       creator,
		Bids:          []models.BidEntry{},
		Image:         in.Image,
		CreatedAt:     now,
	}

	if err := s.repo.InsertListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for %s: %w", caller.Identity, err)
	}
	return listing, nil
}

func creatorFor(caller models.Caller) (models.Creator, error) {
	switch caller.Role {
	case models.KindInstructor:
		return models.InstructorCreator(caller.Identity), nil
	case models.KindBuyer:
		return models.BuyerRequester(caller.Identity), nil
	case models.KindSeller:
		return models.SellerRequester(caller.Identity), nil
	}
	return models.Creator{}, fmt.Errorf("service: %s cannot create listings: %w", caller.Role, marketerrors.ErrForbidden)
}

func validateListing(in models.ListingInput, now time.Time) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "title is required")
	case strings.TrimSpace(in.Description) == "":
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "description is required")
	case strings.TrimSpace(in.Category) == "":
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "category is required")
	case !positive(in.BaseAmount):
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "base_amount must be greater than zero")
	case !positive(in.MinIncrement):
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "min_increment must be greater than zero")
	case !in.LastDate.After(now):
		return marketerrors.WithDetail(marketerrors.ErrInvalidListing, "last_date must be in the future")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// PlaceBid validates and records a bid on an open listing.
// Checks run in order and the first failure wins.
func (s *BiddingService) PlaceBid(ctx context.Context, listingID string, caller models.Caller, amount float64) (BidResult, error) {
	if listingID == "" || caller.Identity == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing listing id or bidder", marketerrors.ErrInvalidBid)
	}
	if !positive(amount) {
		return BidResult{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}
	if caller.Role == models.KindAdmin {
		return BidResult{}, fmt.Errorf("service: admins cannot bid: %w", marketerrors.ErrForbidden)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	now := s.now()
	if !listing.Open(now) {
		return BidResult{}, fmt.Errorf("service: listing %s is %s and closes %s: %w",
			listingID, listing.Status, listing.LastDate.Format(time.RFC3339), marketerrors.ErrListingNotOpen)
	}
	if listing.Creator.Is(caller.Identity) {
		return BidResult{}, fmt.Errorf("service: %s bidding on listing %s: %w", caller.Identity, listingID, marketerrors.ErrSelfBid)
	}

	minimum := listing.MinimumNextBid()
	if decimal.NewFromFloat(amount).LessThan(minimum) {
		return BidResult{}, fmt.Errorf("service: %w", marketerrors.WithDetail(marketerrors.ErrBidTooLow, "minimum bid amount is ¤"+minimum.String()))
	}

	bid := models.BidEntry{
		ID:             utils.GenerateID(),
		BidderIdentity: caller.Identity,
		BidderName:     s.names.DisplayName(ctx, caller.Identity),
		BidderRole:     caller.Role,
		Amount:         amount,
		Timestamp:      now,
	}

	updated, err := s.repo.AcceptBid(ctx, listingID, bid, listing.MinIncrement)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to record bid on listing %s by %s: %w", listingID, caller.Identity, err)
	}

	return BidResult{
		CurrentAmount: updated.CurrentAmount,
		BidderName:    bid.BidderName,
		TotalBids:     len(updated.Bids),
	}, nil
}

// GetListing returns one listing with its creator resolved
func (s *BiddingService) GetListing(ctx context.Context, listingID string) (ListingView, error) {
	if listingID == "" {
		return ListingView{}, fmt.Errorf("service: %w - empty listing id", marketerrors.ErrInvalidInput)
	}
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return ListingView{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return s.view(ctx, listing), nil
}

// WinningBid returns the winner of an ended listing
func (s *BiddingService) WinningBid(ctx context.Context, listingID string) (models.BidEntry, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return models.BidEntry{}, fmt.Errorf("service: failed to get winning bid for listing %s: %w", listingID, err)
	}
	if !listing.Ended(s.now()) {
		return models.BidEntry{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrAuctionRunning)
	}
	winner, ok := listing.WinningBid()
	if !ok {
		return models.BidEntry{}, fmt.Errorf("service: listing %s: %w", listingID, marketerrors.ErrNoBids)
	}
	return winner, nil
}

// SetStatus moderates a listing. Moderation is terminal: a pending listing may
// become approved or rejected, repeating the current decision is a no-op
// success, and flipping a decision fails with ErrInvalidTransition.
func (s *BiddingService) SetStatus(ctx context.Context, listingID string, status models.ListingStatus, admin models.Caller) (models.Listing, error) {
	if admin.Role != models.KindAdmin {
		return models.Listing{}, fmt.Errorf("service: %s cannot moderate listings: %w", admin.Role, marketerrors.ErrForbidden)
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return models.Listing{}, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "status must be approved or rejected")
	}

	listing, err := s.repo.SetListingStatus(ctx, listingID, repository.StatusChange{
		To:   status,
		From: []models.ListingStatus{models.StatusPending, status},
		By:   admin.Identity,
		At:   s.now(),
	})
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to set listing %s to %s: %w", listingID, status, err)
	}
	return listing, nil
}
