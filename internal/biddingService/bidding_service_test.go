package bidding

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
	"artisan-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// staticNames resolves from a fixed map
type staticNames map[string]string

func (n staticNames) DisplayName(_ context.Context, identity string) string {
	if name, ok := n[identity]; ok {
		return name
	}
	return "Unknown User"
}

func (n staticNames) DisplayNameFor(ctx context.Context, _ model.PrincipalKind, identity string) string {
	return n.DisplayName(ctx, identity)
}

var (
	buyer      = model.Caller{Identity: "buyer@x.io", Role: model.KindBuyer}
	rival      = model.Caller{Identity: "rival@x.io", Role: model.KindBuyer}
	seller     = model.Caller{Identity: "seller@x.io", Role: model.KindSeller}
	instructor = model.Caller{Identity: "inst-1", Role: model.KindInstructor}
	admin      = model.Caller{Identity: "admin@x.io", Role: model.KindAdmin}
	names      = staticNames{"buyer@x.io": "Bea Buyer", "rival@x.io": "Rita Rival", "seller@x.io": "Sam Seller", "inst-1": "Ian Instructor"}
)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func openListing(now time.Time) model.Listing {
	return model.Listing{
		ID:            "l1",
		Title:         "Teapot",
		Category:      "pottery",
		BaseAmount:    500,
		CurrentAmount: 500,
		MinIncrement:  50,
		LastDate:      now.Add(time.Hour),
		Status:        model.StatusApproved,
		Creator:       model.SellerRequester(seller.Identity),
		Bids:          []model.BidEntry{},
	}
}

// Tests PlaceBid against a mocked store
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockListingStore(ctrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := NewBiddingService(mockRepo, names, fixedClock(now))

	listing := openListing(now)
	pending := listing
	pending.Status = model.StatusPending
	expired := listing
	expired.LastDate = now.Add(-time.Second)
	closingNow := listing
	closingNow.LastDate = now

	tests := []struct {
		name          string
		listingID     string
		caller        model.Caller
		amount        float64
		mockSetup     func()
		expectedError error
		expectedMsg   string
	}{
		{
			name:      "valid_bid",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil)
				mockRepo.EXPECT().AcceptBid(gomock.Any(), "l1", gomock.Any(), 50.0).
					DoAndReturn(func(_ context.Context, _ string, bid model.BidEntry, _ float64) (model.Listing, error) {
						_, err := uuid.Parse(bid.ID)
						require.NoError(t, err)
						require.Equal(t, "Bea Buyer", bid.BidderName)
						require.Equal(t, model.KindBuyer, bid.BidderRole)
						require.Equal(t, now, bid.Timestamp)
						out := listing
						out.CurrentAmount = bid.Amount
						out.Bids = []model.BidEntry{bid}
						return out, nil
					})
			},
		},
		{name: "empty_listing_id", listingID: "", caller: buyer, amount: 550, mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "empty_bidder", listingID: "l1", caller: model.Caller{Role: model.KindBuyer}, amount: 550, mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "zero_amount", listingID: "l1", caller: buyer, amount: 0, mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "negative_amount", listingID: "l1", caller: buyer, amount: -50, mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "nan_amount", listingID: "l1", caller: buyer, amount: math.NaN(), mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "infinite_amount", listingID: "l1", caller: buyer, amount: math.Inf(1), mockSetup: func() {}, expectedError: marketerrors.ErrInvalidBid},
		{name: "admin_cannot_bid", listingID: "l1", caller: admin, amount: 550, mockSetup: func() {}, expectedError: marketerrors.ErrForbidden},
		{
			name:      "listing_not_found",
			listingID: "missing",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "missing").Return(model.Listing{}, marketerrors.ErrListingNotFound)
			},
			expectedError: marketerrors.ErrListingNotFound,
		},
		{
			name:      "pending_listing",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(pending, nil)
			},
			expectedError: marketerrors.ErrListingNotOpen,
		},
		{
			name:      "expired_listing",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(expired, nil)
			},
			expectedError: marketerrors.ErrListingNotOpen,
		},
		{
			name:      "closing_instant_is_closed",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(closingNow, nil)
			},
			expectedError: marketerrors.ErrListingNotOpen,
		},
		{
			name:      "creator_cannot_bid",
			listingID: "l1",
			caller:    seller,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil)
			},
			expectedError: marketerrors.ErrSelfBid,
		},
		{
			// the self-bid check runs before the amount check
			name:      "creator_with_low_amount_gets_self_bid",
			listingID: "l1",
			caller:    seller,
			amount:    1,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil)
			},
			expectedError: marketerrors.ErrSelfBid,
		},
		{
			name:      "below_minimum",
			listingID: "l1",
			caller:    buyer,
			amount:    549.99,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil)
			},
			expectedError: marketerrors.ErrBidTooLow,
			expectedMsg:   "minimum bid amount is ¤550",
		},
		{
			name:      "lost_race",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(listing, nil)
				mockRepo.EXPECT().AcceptBid(gomock.Any(), "l1", gomock.Any(), 50.0).Return(model.Listing{}, marketerrors.ErrBidConflict)
			},
			expectedError: marketerrors.ErrBidConflict,
		},
		{
			name:      "store_failure",
			listingID: "l1",
			caller:    buyer,
			amount:    550,
			mockSetup: func() {
				mockRepo.EXPECT().GetListing(gomock.Any(), "l1").Return(model.Listing{}, errors.New("db down"))
			},
			expectedError: nil,
			expectedMsg:   "db down",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			res, err := service.PlaceBid(context.Background(), tc.listingID, tc.caller, tc.amount)
			if tc.expectedError == nil && tc.expectedMsg == "" {
				require.NoError(t, err)
				require.Equal(t, BidResult{CurrentAmount: tc.amount, BidderName: "Bea Buyer", TotalBids: 1}, res)
				return
			}

			require.Error(t, err)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			}
			if tc.expectedMsg != "" {
				require.Contains(t, err.Error(), tc.expectedMsg)
			}
			if errors.Is(tc.expectedError, marketerrors.ErrBidTooLow) {
				require.Equal(t, tc.expectedMsg, marketerrors.Detail(err))
			}
		})
	}
}

// Tests CreateListing
func TestBiddingService_CreateListing(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	valid := model.ListingInput{
		Title:        " Teapot ",
		Description:  "hand thrown",
		Category:     "pottery",
		Condition:    "new",
		BaseAmount:   500,
		MinIncrement: 50,
		LastDate:     now.Add(48 * time.Hour),
	}
	with := func(mut func(*model.ListingInput)) model.ListingInput {
		in := valid
		mut(&in)
		return in
	}

	tests := []struct {
		name        string
		caller      model.Caller
		input       model.ListingInput
		wantCreator model.Creator
		wantErr     error
	}{
		{name: "instructor_direct", caller: instructor, input: valid, wantCreator: model.InstructorCreator("inst-1")},
		{name: "buyer_request", caller: buyer, input: valid, wantCreator: model.BuyerRequester("buyer@x.io")},
		{name: "seller_request", caller: seller, input: valid, wantCreator: model.SellerRequester("seller@x.io")},
		{name: "admin_forbidden", caller: admin, input: valid, wantErr: marketerrors.ErrForbidden},
		{name: "missing_title", caller: buyer, input: with(func(in *model.ListingInput) { in.Title = "  " }), wantErr: marketerrors.ErrInvalidListing},
		{name: "missing_description", caller: buyer, input: with(func(in *model.ListingInput) { in.Description = "" }), wantErr: marketerrors.ErrInvalidListing},
		{name: "missing_category", caller: buyer, input: with(func(in *model.ListingInput) { in.Category = "" }), wantErr: marketerrors.ErrInvalidListing},
		{name: "zero_base", caller: buyer, input: with(func(in *model.ListingInput) { in.BaseAmount = 0 }), wantErr: marketerrors.ErrInvalidListing},
		{name: "negative_increment", caller: buyer, input: with(func(in *model.ListingInput) { in.MinIncrement = -1 }), wantErr: marketerrors.ErrInvalidListing},
		{name: "last_date_now", caller: buyer, input: with(func(in *model.ListingInput) { in.LastDate = now }), wantErr: marketerrors.ErrInvalidListing},
		{name: "last_date_past", caller: buyer, input: with(func(in *model.ListingInput) { in.LastDate = now.Add(-time.Hour) }), wantErr: marketerrors.ErrInvalidListing},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			service := NewBiddingService(repo, names, fixedClock(now))

			l, err := service.CreateListing(context.Background(), tc.caller, tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				n, _ := repo.CountListings(context.Background(), repository.ListingFilter{})
				require.Zero(t, n)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Teapot", l.Title)
			require.Equal(t, model.StatusPending, l.Status)
			require.Equal(t, l.BaseAmount, l.CurrentAmount)
			require.Empty(t, l.Bids)
			require.Equal(t, tc.wantCreator, l.Creator)

			stored, err := repo.GetListing(context.Background(), l.ID)
			require.NoError(t, err)
			require.Equal(t, l.ID, stored.ID)

			// new listings stay out of the public feed until approved
			active, err := service.ActiveListings(context.Background())
			require.NoError(t, err)
			require.Empty(t, active)

			mine, err := service.MyListings(context.Background(), tc.caller)
			require.NoError(t, err)
			require.Len(t, mine, 1)
		})
	}
}

// Tests SetStatus
func TestBiddingService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockListingStore(ctrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service := NewBiddingService(mockRepo, names, fixedClock(now))

	t.Run("approve_sends_terminal_guard", func(t *testing.T) {
		mockRepo.EXPECT().SetListingStatus(gomock.Any(), "l1", repository.StatusChange{
			To:   model.StatusApproved,
			From: []model.ListingStatus{model.StatusPending, model.StatusApproved},
			By:   admin.Identity,
			At:   now,
		}).Return(model.Listing{ID: "l1", Status: model.StatusApproved}, nil)

		l, err := service.SetStatus(context.Background(), "l1", model.StatusApproved, admin)
		require.NoError(t, err)
		require.Equal(t, model.StatusApproved, l.Status)
	})

	t.Run("flip_is_refused", func(t *testing.T) {
		mockRepo.EXPECT().SetListingStatus(gomock.Any(), "l1", gomock.Any()).Return(model.Listing{}, marketerrors.ErrInvalidTransition)

		_, err := service.SetStatus(context.Background(), "l1", model.StatusRejected, admin)
		require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)
	})

	t.Run("pending_is_not_a_target", func(t *testing.T) {
		_, err := service.SetStatus(context.Background(), "l1", model.StatusPending, admin)
		require.ErrorIs(t, err, marketerrors.ErrInvalidStatus)
	})

	t.Run("unknown_status", func(t *testing.T) {
		_, err := service.SetStatus(context.Background(), "l1", "archived", admin)
		require.ErrorIs(t, err, marketerrors.ErrInvalidStatus)
	})

	t.Run("non_admin", func(t *testing.T) {
		_, err := service.SetStatus(context.Background(), "l1", model.StatusApproved, seller)
		require.ErrorIs(t, err, marketerrors.ErrForbidden)
	})
}
