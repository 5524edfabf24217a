package perftests

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	bidding "artisan-market/internal/biddingService"
	identity "artisan-market/internal/identityService"
	model "artisan-market/internal/models"
	"artisan-market/internal/repository"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	admin  = model.Caller{Identity: "admin@bench.io", Role: model.KindAdmin}
	seller = model.Caller{Identity: "seller@bench.io", Role: model.KindSeller}
)

// clock runs at wall time shifted by an offset that benchmarks can advance
type clock struct {
	offset atomic.Int64
}

func (c *clock) Now() time.Time {
	return time.Now().UTC().Add(time.Duration(c.offset.Load()))
}

func (c *clock) Advance(d time.Duration) {
	c.offset.Add(int64(d))
}

// setupService builds a bidding service over the in-memory repository
func setupService() (*bidding.BiddingService, *clock) {
	repo := repository.NewMemoryRepo()
	clk := &clock{}
	svc := bidding.NewBiddingService(repo, identity.NewDirectory(repo, nil), bidding.WithClock(clk.Now))
	return svc, clk
}

// seedListings creates n approved listings with a base of 100 and an increment of 1
func seedListings(b *testing.B, svc *bidding.BiddingService, n int) []string {
	b.Helper()
	ctx := context.Background()
	faker := gofakeit.New(42)

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l, err := svc.CreateListing(ctx, seller, model.ListingInput{
			Title:        faker.ProductName(),
			Description:  faker.ProductDescription(),
			Category:     faker.ProductCategory(),
			BaseAmount:   100,
			MinIncrement: 1,
			LastDate:     time.Now().Add(time.Hour),
		})
		if err != nil {
			b.Fatalf("failed to create listing: %v", err)
		}
		if _, err := svc.SetStatus(ctx, l.ID, model.StatusApproved, admin); err != nil {
			b.Fatalf("failed to approve listing: %v", err)
		}
		ids = append(ids, l.ID)
	}
	return ids
}

// bidder returns a fake buyer caller
func bidder(faker *gofakeit.Faker) model.Caller {
	return model.Caller{Identity: faker.Email(), Role: model.KindBuyer}
}
