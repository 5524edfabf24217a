package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
	"artisan-market/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source shared with the service under test
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	ctx     context.Context
	repo    *repository.MemoryRepo
	service *BiddingService
	clock   *clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := repository.NewMemoryRepo()
	return &fixture{
		ctx:     context.Background(),
		repo:    repo,
		service: NewBiddingService(repo, names, WithClock(c.Now)),
		clock:   c,
	}
}

// approvedListing creates and approves a listing owned by creator
func (f *fixture) approvedListing(t *testing.T, creator model.Caller, base, increment float64, runFor time.Duration) model.Listing {
	t.Helper()
	l, err := f.service.CreateListing(f.ctx, creator, model.ListingInput{
		Title:        "Vase",
		Description:  "blue glaze",
		Category:     "pottery",
		Condition:    "new",
		BaseAmount:   base,
		MinIncrement: increment,
		LastDate:     f.clock.Now().Add(runFor),
	})
	require.NoError(t, err)
	l, err = f.service.SetStatus(f.ctx, l.ID, model.StatusApproved, admin)
	require.NoError(t, err)
	return l
}

func TestScenario_MinimumIncrementSequence(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, seller, 500, 50, time.Hour)

	steps := []struct {
		amount  float64
		wantErr error
		want    float64
	}{
		{amount: 500, wantErr: marketerrors.ErrBidTooLow, want: 500},
		{amount: 550, want: 550},
		{amount: 550, wantErr: marketerrors.ErrBidTooLow, want: 550},
		{amount: 600, want: 600},
	}

	accepted := 0
	for i, step := range steps {
		res, err := f.service.PlaceBid(f.ctx, l.ID, buyer, step.amount)
		stored, getErr := f.repo.GetListing(f.ctx, l.ID)
		require.NoError(t, getErr)

		if step.wantErr != nil {
			require.ErrorIs(t, err, step.wantErr, "step %d", i)
		} else {
			require.NoError(t, err, "step %d", i)
			accepted++
			require.Equal(t, step.amount, res.CurrentAmount)
			require.Equal(t, accepted, res.TotalBids)
		}
		// rejected bids leave no trace
		require.Equal(t, step.want, stored.CurrentAmount, "step %d", i)
		require.Len(t, stored.Bids, accepted, "step %d", i)
	}
}

func TestScenario_CurrentAmountIsMonotonic(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, instructor, 100, 7.5, time.Hour)

	prev := l.CurrentAmount
	for i, amount := range []float64{107.5, 90, 120, 127, 127.5, 135, 135, 1000} {
		_, _ = f.service.PlaceBid(f.ctx, l.ID, []model.Caller{buyer, rival}[i%2], amount)

		stored, err := f.repo.GetListing(f.ctx, l.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, stored.CurrentAmount, prev)
		if stored.CurrentAmount != prev {
			require.GreaterOrEqual(t, stored.CurrentAmount-prev, 7.5)
		}
		require.GreaterOrEqual(t, stored.CurrentAmount, stored.BaseAmount)
		prev = stored.CurrentAmount
	}
	require.Equal(t, 1000.0, prev)
}

func TestScenario_CreatorNeverBidsOnOwnListing(t *testing.T) {
	t.Parallel()

	for _, creator := range []model.Caller{buyer, seller, instructor} {
		creator := creator
		t.Run(string(creator.Role), func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			l := f.approvedListing(t, creator, 10, 1, time.Hour)

			for _, amount := range []float64{1, 11, 1e6} {
				_, err := f.service.PlaceBid(f.ctx, l.ID, creator, amount)
				require.ErrorIs(t, err, marketerrors.ErrSelfBid)
			}
			stored, _ := f.repo.GetListing(f.ctx, l.ID)
			require.Empty(t, stored.Bids)
		})
	}
}

func TestScenario_UnapprovedListingRejectsBids(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l, err := f.service.CreateListing(f.ctx, instructor, model.ListingInput{
		Title: "Loom", Description: "oak", Category: "weaving",
		BaseAmount: 10, MinIncrement: 1, LastDate: f.clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = f.service.PlaceBid(f.ctx, l.ID, buyer, 20)
	require.ErrorIs(t, err, marketerrors.ErrListingNotOpen)

	_, err = f.service.SetStatus(f.ctx, l.ID, model.StatusRejected, admin)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, l.ID, buyer, 20)
	require.ErrorIs(t, err, marketerrors.ErrListingNotOpen)

	// rejection is final
	_, err = f.service.SetStatus(f.ctx, l.ID, model.StatusApproved, admin)
	require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)
}

func TestScenario_ConcurrentBids(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, seller, 100, 10, time.Hour)

	bidders := make([]model.Caller, 40)
	for i := range bidders {
		bidders[i] = model.Caller{Identity: fmt.Sprintf("bidder-%d@x.io", i), Role: model.KindBuyer}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []float64
		failures []error
	)
	for i, b := range bidders {
		wg.Add(1)
		amount := float64(110 + 10*(i%8))
		b := b
		go func() {
			defer wg.Done()
			_, err := f.service.PlaceBid(f.ctx, l.ID, b, amount)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			accepted = append(accepted, amount)
		}()
	}
	wg.Wait()

	for _, err := range failures {
		if !errors.Is(err, marketerrors.ErrBidConflict) {
			require.ErrorIs(t, err, marketerrors.ErrBidTooLow)
		}
	}

	stored, err := f.repo.GetListing(f.ctx, l.ID)
	require.NoError(t, err)
	require.NotEmpty(t, accepted)
	require.Len(t, stored.Bids, len(accepted))

	highest := accepted[0]
	for _, a := range accepted {
		highest = max(highest, a)
	}
	require.Equal(t, highest, stored.CurrentAmount)

	// accepted bids climb by at least the increment in arrival order
	for i := 1; i < len(stored.Bids); i++ {
		require.GreaterOrEqual(t, stored.Bids[i].Amount-stored.Bids[i-1].Amount, 10.0)
	}
}

func TestScenario_WinnerAfterClose(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, seller, 500, 50, time.Hour)

	_, err := f.service.PlaceBid(f.ctx, l.ID, buyer, 700)
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	_, err = f.service.PlaceBid(f.ctx, l.ID, rival, 900)
	require.NoError(t, err)

	_, err = f.service.WinningBid(f.ctx, l.ID)
	require.ErrorIs(t, err, marketerrors.ErrAuctionRunning)

	f.clock.Advance(2 * time.Hour)
	_, err = f.service.PlaceBid(f.ctx, l.ID, buyer, 2000)
	require.ErrorIs(t, err, marketerrors.ErrListingNotOpen)

	winner, err := f.service.WinningBid(f.ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, rival.Identity, winner.BidderIdentity)
	require.Equal(t, 900.0, winner.Amount)

	// outcome classification agrees with the winner rule
	rivalSum, err := f.service.Summary(f.ctx, rival)
	require.NoError(t, err)
	require.Equal(t, 1, rivalSum.WonCount)
	require.Zero(t, rivalSum.LostCount)

	buyerSum, err := f.service.Summary(f.ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, 1, buyerSum.LostCount)
	require.Zero(t, buyerSum.WonCount)
}

func TestScenario_WinnerWithoutBids(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, seller, 500, 50, time.Hour)
	f.clock.Advance(2 * time.Hour)

	_, err := f.service.WinningBid(f.ctx, l.ID)
	require.ErrorIs(t, err, marketerrors.ErrNoBids)

	_, err = f.service.WinningBid(f.ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
}

func TestScenario_ParticipatedRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	first := f.approvedListing(t, seller, 100, 10, time.Hour)
	second := f.approvedListing(t, instructor, 50, 5, 2*time.Hour)
	untouched := f.approvedListing(t, instructor, 50, 5, 2*time.Hour)
	owned := f.approvedListing(t, buyer, 30, 5, 2*time.Hour)

	_, err := f.service.PlaceBid(f.ctx, first.ID, buyer, 110)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, first.ID, rival, 150)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, first.ID, buyer, 170)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, second.ID, buyer, 60)
	require.NoError(t, err)

	f.clock.Advance(90 * time.Minute)

	got, err := f.service.ParticipatedListings(f.ctx, buyer)
	require.NoError(t, err)

	byID := map[string]ParticipatedListing{}
	for _, p := range got {
		byID[p.ID] = p
	}
	require.Len(t, byID, 3)
	require.NotContains(t, byID, untouched.ID)

	p := byID[first.ID]
	require.Equal(t, AuctionCompleted, p.State)
	require.Equal(t, 170.0, p.MyHighestBid)
	require.Equal(t, buyer.Identity, p.HighestBidder)
	require.Equal(t, 3, p.TotalBids)
	require.Equal(t, "seller@x.io", p.SellerEmail)
	require.Equal(t, []float64{170, 150, 110}, amounts(p.BidHistory))
	require.False(t, p.IsCreator)

	p = byID[second.ID]
	require.Equal(t, AuctionActive, p.State)
	require.Equal(t, "inst-1", p.InstructorID)
	require.Equal(t, "Ian Instructor", p.InstructorName)

	p = byID[owned.ID]
	require.True(t, p.IsCreator)
	require.Zero(t, p.MyHighestBid)
	require.Equal(t, "buyer@x.io", p.RequesterEmail)

	// every accepted bid is visible through the bidder's view
	rivalView, err := f.service.ParticipatedListings(f.ctx, rival)
	require.NoError(t, err)
	require.Len(t, rivalView, 1)
	require.Equal(t, 150.0, rivalView[0].MyHighestBid)
}

func amounts(bids []model.BidEntry) []float64 {
	out := make([]float64, 0, len(bids))
	for _, b := range bids {
		out = append(out, b.Amount)
	}
	return out
}

func TestScenario_Summary(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// buyer's own requests: one pending, one approved, one rejected
	for _, target := range []model.ListingStatus{"", model.StatusApproved, model.StatusRejected} {
		l, err := f.service.CreateListing(f.ctx, buyer, model.ListingInput{
			Title: "Req", Description: "d", Category: "textiles",
			BaseAmount: 10, MinIncrement: 1, LastDate: f.clock.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		if target != "" {
			_, err = f.service.SetStatus(f.ctx, l.ID, target, admin)
			require.NoError(t, err)
		}
	}

	running := f.approvedListing(t, seller, 100, 10, 3*time.Hour)
	won := f.approvedListing(t, seller, 100, 10, time.Hour)
	lost := f.approvedListing(t, instructor, 100, 10, time.Hour)

	_, err := f.service.PlaceBid(f.ctx, running.ID, buyer, 110)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, won.ID, buyer, 110)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, lost.ID, buyer, 110)
	require.NoError(t, err)
	_, err = f.service.PlaceBid(f.ctx, lost.ID, rival, 120)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)

	sum, err := f.service.Summary(f.ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, 1, sum.ActiveCount)
	require.Equal(t, 1, sum.WonCount)
	require.Equal(t, 1, sum.LostCount)
	require.Equal(t, 1, sum.PendingCount)
	require.Equal(t, 1, sum.ApprovedCount)
	require.Equal(t, 1, sum.RejectedCount)
	require.EqualValues(t, 6, sum.TotalListings)
	require.EqualValues(t, 1, sum.TotalActiveListings)
	require.Equal(t, model.CategoryCount{Name: "pottery", Count: 3}, sum.CategoryStats[0])
}

func TestScenario_AdminListingsResolveCreator(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.approvedListing(t, seller, 10, 1, time.Hour)
	_, err := f.service.CreateListing(f.ctx, instructor, model.ListingInput{
		Title: "T", Description: "D", Category: "C", BaseAmount: 1, MinIncrement: 1, LastDate: f.clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	all, err := f.service.AllListings(f.ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	creators := map[string]bool{}
	for _, v := range all {
		creators[v.CreatorName] = true
	}
	require.True(t, creators["Sam Seller"])
	require.True(t, creators["Ian Instructor"])

	pending, err := f.service.AllListings(f.ctx, model.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestComputeInvoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		final     float64
		rate      float64
		wantFee   float64
		wantTotal float64
	}{
		{name: "thousand", final: 1000, rate: 0.05, wantFee: 50, wantTotal: 1050},
		{name: "cents_rounded", final: 333.33, rate: 0.05, wantFee: 16.67, wantTotal: 350},
		{name: "small", final: 0.3, rate: 0.05, wantFee: 0.02, wantTotal: 0.32},
		{name: "custom_rate", final: 200, rate: 0.1, wantFee: 20, wantTotal: 220},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := model.Listing{ID: "l1", Title: "Vase", CurrentAmount: tc.final, Creator: model.SellerRequester("s@x.io")}
			winner := model.BidEntry{BidderIdentity: "b@x.io", Amount: tc.final}
			inv := ComputeInvoice(l, winner, "Bea", "Sam", decimal.NewFromFloat(tc.rate), time.Time{})

			require.Equal(t, tc.final, inv.FinalAmount)
			require.Equal(t, tc.wantFee, inv.PlatformFee)
			require.Equal(t, tc.wantTotal, inv.TotalAmount)
			require.Equal(t, "b@x.io", inv.WinnerIdentity)
			require.Equal(t, "s@x.io", inv.SellerIdentity)
		})
	}
}

func TestBiddingService_Invoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	l := f.approvedListing(t, seller, 1000, 100, time.Hour)
	_, err := f.service.PlaceBid(f.ctx, l.ID, buyer, 1000+100)
	require.NoError(t, err)

	_, err = f.service.Invoice(f.ctx, l.ID, buyer)
	require.ErrorIs(t, err, marketerrors.ErrAuctionRunning)

	f.clock.Advance(2 * time.Hour)

	inv, err := f.service.Invoice(f.ctx, l.ID, buyer)
	require.NoError(t, err)
	require.Equal(t, 1100.0, inv.FinalAmount)
	require.Equal(t, 55.0, inv.PlatformFee)
	require.Equal(t, 1155.0, inv.TotalAmount)
	require.Equal(t, "Bea Buyer", inv.WinnerName)
	require.Equal(t, "Sam Seller", inv.SellerName)

	_, err = f.service.Invoice(f.ctx, l.ID, seller)
	require.NoError(t, err, "creator may download the invoice")

	_, err = f.service.Invoice(f.ctx, l.ID, rival)
	require.ErrorIs(t, err, marketerrors.ErrForbidden)

	empty := f.approvedListing(t, seller, 10, 1, time.Minute)
	f.clock.Advance(time.Hour)
	_, err = f.service.Invoice(f.ctx, empty.ID, seller)
	require.ErrorIs(t, err, marketerrors.ErrNoBids)
}
