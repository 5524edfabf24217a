package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startMongo runs a disposable MongoDB and returns a store bound to a fresh database
func startMongo(t *testing.T) *MongoStore {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping MongoDB integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	store, err := ConnectMongo(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "market_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	return store
}

// TestMongoStore_Integration runs the conditional writes against a real server
func TestMongoStore_Integration(t *testing.T) {
	store := startMongo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("accept_bid_compare_and_swap", func(t *testing.T) {
		l := newListing("cas", model.StatusApproved, 500, 50, now.Add(time.Hour))
		l.Bids = nil
		require.NoError(t, store.InsertListing(ctx, l))

		_, err := store.AcceptBid(ctx, "cas", newBid("b0", "a@x.io", 500, now), 50)
		require.ErrorIs(t, err, marketerrors.ErrBidConflict)

		got, err := store.AcceptBid(ctx, "cas", newBid("b1", "a@x.io", 550, now), 50)
		require.NoError(t, err)
		require.Equal(t, 550.0, got.CurrentAmount)
		require.Len(t, got.Bids, 1)

		_, err = store.AcceptBid(ctx, "cas", newBid("b2", "b@x.io", 550, now), 50)
		require.ErrorIs(t, err, marketerrors.ErrBidConflict)

		got, err = store.AcceptBid(ctx, "cas", newBid("b3", "b@x.io", 600, now), 50)
		require.NoError(t, err)
		require.Equal(t, 600.0, got.CurrentAmount)
		require.Len(t, got.Bids, 2)
	})

	t.Run("concurrent_equal_bids", func(t *testing.T) {
		require.NoError(t, store.InsertListing(ctx, newListing("race", model.StatusApproved, 100, 10, now.Add(time.Hour))))

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				if _, err := store.AcceptBid(ctx, "race", newBid(fmt.Sprintf("b-%d", i), fmt.Sprintf("u-%d", i), 110, now), 10); err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		l, err := store.GetListing(ctx, "race")
		require.NoError(t, err)
		require.Equal(t, 1, accepted)
		require.Len(t, l.Bids, 1)
	})

	t.Run("moderation_is_terminal", func(t *testing.T) {
		require.NoError(t, store.InsertListing(ctx, newListing("mod", model.StatusPending, 100, 10, now.Add(time.Hour))))

		approve := StatusChange{To: model.StatusApproved, From: []model.ListingStatus{model.StatusPending, model.StatusApproved}, By: "admin@x.io", At: now}
		reject := StatusChange{To: model.StatusRejected, From: []model.ListingStatus{model.StatusPending, model.StatusRejected}, By: "admin@x.io", At: now}

		got, err := store.SetListingStatus(ctx, "mod", approve)
		require.NoError(t, err)
		require.Equal(t, model.StatusApproved, got.Status)

		_, err = store.SetListingStatus(ctx, "mod", approve)
		require.NoError(t, err)

		_, err = store.SetListingStatus(ctx, "mod", reject)
		require.ErrorIs(t, err, marketerrors.ErrInvalidTransition)

		_, err = store.SetListingStatus(ctx, "missing", reject)
		require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
	})

	t.Run("participant_filter_and_categories", func(t *testing.T) {
		owned := newListing("owned", model.StatusApproved, 100, 10, now.Add(time.Hour))
		owned.Creator = model.BuyerRequester("p@x.io")
		owned.Category = "glass"
		require.NoError(t, store.InsertListing(ctx, owned))

		got, err := store.FindListings(ctx, ListingFilter{Participant: "p@x.io"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "owned", got[0].ID)

		cats, err := store.TopCategories(ctx, 5)
		require.NoError(t, err)
		require.NotEmpty(t, cats)
		require.Equal(t, "pottery", cats[0].Name)
	})

	t.Run("principals_unique_per_kind", func(t *testing.T) {
		p := model.Principal{ID: "p1", Kind: model.KindBuyer, Email: "dup@x.io", CreatedAt: now}
		require.NoError(t, store.CreatePrincipal(ctx, p))

		p.ID = "p2"
		require.ErrorIs(t, store.CreatePrincipal(ctx, p), marketerrors.ErrDuplicatePrincipal)

		p.Kind = model.KindSeller
		require.NoError(t, store.CreatePrincipal(ctx, p))

		require.NoError(t, store.SetBlocked(ctx, model.KindSeller, "p2", true))
		got, err := store.FindPrincipalByEmail(ctx, model.KindSeller, "dup@x.io")
		require.NoError(t, err)
		require.True(t, got.Blocked)
	})

	t.Run("stock_and_baskets", func(t *testing.T) {
		require.NoError(t, store.InsertProduct(ctx, model.Product{ID: "prod", SellerEmail: "s@x.io", Quantity: 1, CreatedAt: now}))
		require.NoError(t, store.DecrementStock(ctx, "prod", 1))
		require.ErrorIs(t, store.DecrementStock(ctx, "prod", 1), marketerrors.ErrOutOfStock)
		require.ErrorIs(t, store.DecrementStock(ctx, "nope", 1), marketerrors.ErrProductNotFound)

		require.NoError(t, store.AddToBasket(ctx, model.BasketCart, "b@x.io", "prod"))
		require.NoError(t, store.AddToBasket(ctx, model.BasketCart, "b@x.io", "prod"))
		ids, err := store.GetBasket(ctx, model.BasketCart, "b@x.io")
		require.NoError(t, err)
		require.Equal(t, []string{"prod"}, ids)

		require.NoError(t, store.ClearBasket(ctx, model.BasketCart, "b@x.io"))
		ids, err = store.GetBasket(ctx, model.BasketCart, "b@x.io")
		require.NoError(t, err)
		require.Empty(t, ids)
	})

	t.Run("orders_unique_per_payment", func(t *testing.T) {
		o := model.Order{ID: "o1", BuyerEmail: "b@x.io", PaymentID: "cs_1", Status: model.OrderConfirmed, CreatedAt: now,
			Items: []model.OrderItem{{ProductID: "prod", SellerEmail: "s@x.io", Quantity: 1}}}
		require.NoError(t, store.InsertOrder(ctx, o))

		o.ID = "o2"
		require.ErrorIs(t, store.InsertOrder(ctx, o), marketerrors.ErrDuplicateOrder)

		orders, err := store.ListOrders(ctx, OrderFilter{SellerEmail: "s@x.io"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
	})

	t.Run("events", func(t *testing.T) {
		exerciseEventStore(t, store)
	})

	t.Run("complaints", func(t *testing.T) {
		exerciseComplaintStore(t, store)
	})
}
