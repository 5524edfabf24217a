package bidding

import (
	"context"
	"fmt"

	"artisan-market/internal/models"
	"artisan-market/internal/repository"
)

// Auction states reported on participated listings
const (
	AuctionActive    = "active"
	AuctionCompleted = "completed"
)

// ListingView is a listing with its creator tag flattened for clients
type ListingView struct {
	models.Listing
	CreatorName    string `json:"creator_name"`
	InstructorID   string `json:"instructor_id,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`
	RequesterEmail string `json:"requester_email,omitempty"`
	SellerEmail    string `json:"seller_email,omitempty"`
	TotalBids      int    `json:"total_bids"`
}

// ParticipatedListing annotates a listing from the caller's point of view
type ParticipatedListing struct {
	ListingView
	BidHistory    []models.BidEntry `json:"bid_history"`
	MyHighestBid  float64           `json:"my_highest_bid"`
	HighestBidder string            `json:"highest_bidder,omitempty"`
	// State shadows the moderation status, which is always approved here.
	State     string `json:"status"`
	IsCreator bool   `json:"is_creator"`
}

// Summary aggregates the caller's auction activity
type Summary struct {
	ActiveCount         int                    `json:"active_count"`
	WonCount            int                    `json:"won_count"`
	LostCount           int                    `json:"lost_count"`
	PendingCount        int                    `json:"pending_count"`
	ApprovedCount       int                    `json:"approved_count"`
	RejectedCount       int                    `json:"rejected_count"`
	TotalListings       int64                  `json:"total_listings"`
	TotalActiveListings int64                  `json:"total_active_listings"`
	CategoryStats       []models.CategoryCount `json:"category_stats"`
}

func (s *BiddingService) view(ctx context.Context, l models.Listing) ListingView {
	v := ListingView{
		Listing:     l,
		CreatorName: s.names.DisplayNameFor(ctx, l.Creator.Kind, l.Creator.Identity),
		TotalBids:   len(l.Bids),
	}
	switch l.Creator.Kind {
	case models.KindInstructor:
		v.InstructorID = l.Creator.Identity
		v.InstructorName = v.CreatorName
	case models.KindBuyer:
		v.RequesterEmail = l.Creator.Identity
	case models.KindSeller:
		v.SellerEmail = l.Creator.Identity
	}
	return v
}

func (s *BiddingService) views(ctx context.Context, listings []models.Listing) []ListingView {
	out := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		out = append(out, s.view(ctx, l))
	}
	return out
}

// ActiveListings returns approved listings that are still open
func (s *BiddingService) ActiveListings(ctx context.Context) ([]ListingView, error) {
	listings, err := s.repo.FindListings(ctx, repository.ListingFilter{
		Status:    models.StatusApproved,
		EndsAfter: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active listings: %w", err)
	}
	return s.views(ctx, listings), nil
}

// AllListings returns every listing regardless of status, for moderation
func (s *BiddingService) AllListings(ctx context.Context, status models.ListingStatus) ([]ListingView, error) {
	listings, err := s.repo.FindListings(ctx, repository.ListingFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return s.views(ctx, listings), nil
}

// MyListings returns the caller's own listings in any status
func (s *BiddingService) MyListings(ctx context.Context, caller models.Caller) ([]ListingView, error) {
	listings, err := s.repo.FindListings(ctx, repository.ListingFilter{Creator: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings of %s: %w", caller.Identity, err)
	}
	return s.views(ctx, listings), nil
}

// ParticipatedListings returns listings the caller bid on or created and got approved
func (s *BiddingService) ParticipatedListings(ctx context.Context, caller models.Caller) ([]ParticipatedListing, error) {
	listings, err := s.repo.FindListings(ctx, repository.ListingFilter{Participant: caller.Identity})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list participated listings of %s: %w", caller.Identity, err)
	}

	now := s.now()
	out := make([]ParticipatedListing, 0, len(listings))
	for _, l := range listings {
		p := ParticipatedListing{
			ListingView: s.view(ctx, l),
			BidHistory:  l.BidHistory(),
			State:       AuctionActive,
			IsCreator:   l.Creator.Is(caller.Identity),
		}
		if l.Ended(now) {
			p.State = AuctionCompleted
		}
		if mine, ok := l.HighestBidBy(caller.Identity); ok {
			p.MyHighestBid = mine.Amount
		}
		if top, ok := l.WinningBid(); ok {
			p.HighestBidder = top.BidderIdentity
		}
		out = append(out, p)
	}
	return out, nil
}

// Summary counts the caller's bidding outcomes and own listing statuses
func (s *BiddingService) Summary(ctx context.Context, caller models.Caller) (Summary, error) {
	now := s.now()
	var sum Summary

	own, err := s.repo.FindListings(ctx, repository.ListingFilter{Creator: caller.Identity})
	if err != nil {
		return Summary{}, fmt.Errorf("service: failed to list listings of %s: %w", caller.Identity, err)
	}
	for _, l := range own {
		switch l.Status {
		case models.StatusPending:
			sum.PendingCount++
		case models.StatusApproved:
			sum.ApprovedCount++
		case models.StatusRejected:
			sum.RejectedCount++
		}
	}

	participated, err := s.repo.FindListings(ctx, repository.ListingFilter{Participant: caller.Identity})
	if err != nil {
		return Summary{}, fmt.Errorf("service: failed to list participated listings of %s: %w", caller.Identity, err)
	}
	for _, l := range participated {
		if !l.HasBidder(caller.Identity) {
			continue
		}
		if !l.Ended(now) {
			sum.ActiveCount++
			continue
		}
		if winner, ok := l.WinningBid(); ok && winner.BidderIdentity == caller.Identity {
			sum.WonCount++
		} else {
			sum.LostCount++
		}
	}

	if sum.TotalListings, err = s.repo.CountListings(ctx, repository.ListingFilter{}); err != nil {
		return Summary{}, fmt.Errorf("service: failed to count listings: %w", err)
	}
	if sum.TotalActiveListings, err = s.repo.CountListings(ctx, repository.ListingFilter{Status: models.StatusApproved, EndsAfter: now}); err != nil {
		return Summary{}, fmt.Errorf("service: failed to count active listings: %w", err)
	}
	if sum.CategoryStats, err = s.repo.TopCategories(ctx, topCategoryLimit); err != nil {
		return Summary{}, fmt.Errorf("service: failed to rank categories: %w", err)
	}
	return sum, nil
}

// ListingStats counts listings for the admin dashboard
type ListingStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Pending int64 `json:"pending"`
}

// ListingStats returns platform-wide listing counts
func (s *BiddingService) ListingStats(ctx context.Context) (ListingStats, error) {
	var (
		stats ListingStats
		err   error
	)
	if stats.Total, err = s.repo.CountListings(ctx, repository.ListingFilter{}); err != nil {
		return ListingStats{}, fmt.Errorf("service: failed to count listings: %w", err)
	}
	if stats.Active, err = s.repo.CountListings(ctx, repository.ListingFilter{Status: models.StatusApproved, EndsAfter: s.now()}); err != nil {
		return ListingStats{}, fmt.Errorf("service: failed to count active listings: %w", err)
	}
	if stats.Pending, err = s.repo.CountListings(ctx, repository.ListingFilter{Status: models.StatusPending}); err != nil {
		return ListingStats{}, fmt.Errorf("service: failed to count pending listings: %w", err)
	}
	return stats, nil
}
