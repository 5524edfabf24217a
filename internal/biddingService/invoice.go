package bidding

import (
	"context"
	"fmt"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeInvoice settles a finished auction. It does no I/O.
func ComputeInvoice(l models.Listing, winner models.BidEntry, winnerName, sellerName string, feeRate decimal.Decimal, issuedAt time.Time) models.Invoice {
	final := decimal.NewFromFloat(l.CurrentAmount)
	fee := final.Mul(feeRate).Round(2)
	total := final.Add(fee).Round(2)

	return models.Invoice{
		ListingID:      l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Category:       l.Category,
		Condition:      l.Condition,
		EndDate:        l.LastDate,
		FinalAmount:    final.InexactFloat64(),
		FeeRate:        feeRate.InexactFloat64(),
		PlatformFee:    fee.InexactFloat64(),
		TotalAmount:    total.InexactFloat64(),
		WinnerIdentity: winner.BidderIdentity,
		WinnerName:     winnerName,
		SellerIdentity: l.Creator.Identity,
		SellerName:     sellerName,
		IssuedAt:       issuedAt,
	}
}

// Invoice builds the invoice of an ended listing for its winner or creator
func (s *BiddingService) Invoice(ctx context.Context, listingID string, caller models.Caller) (models.Invoice, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("service: failed to load listing %s for invoice: %w", listingID, err)
	}

	now := s.now()
	if !listing.Ended(now) {
		return models.Invoice{}, fmt.Errorf("service: invoice for listing %s: %w", listingID, marketerrors.ErrAuctionRunning)
	}
	winner, ok := listing.WinningBid()
	if !ok {
		return models.Invoice{}, fmt.Errorf("service: invoice for listing %s: %w", listingID, marketerrors.ErrNoBids)
	}
	if caller.Identity != winner.BidderIdentity && !listing.Creator.Is(caller.Identity) {
		return models.Invoice{}, fmt.Errorf("service: %s requesting invoice for listing %s: %w", caller.Identity, listingID, marketerrors.ErrForbidden)
	}

	winnerName := s.names.DisplayNameFor(ctx, winner.BidderRole, winner.BidderIdentity)
	sellerName := s.names.DisplayNameFor(ctx, listing.Creator.Kind, listing.Creator.Identity)

	return ComputeInvoice(listing, winner, winnerName, sellerName, s.feeRate, now), nil
}
