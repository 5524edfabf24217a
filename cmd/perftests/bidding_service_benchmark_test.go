package perftests

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Benchmark 1: PlaceBid - Isolated Listings (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, _ := setupService()
	ids := seedListings(b, svc, b.N)
	faker := gofakeit.New(1)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBid(ctx, ids[i], bidder(faker), float64(101+faker.IntRange(0, 99))); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Listing (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedListing(b *testing.B) {
	svc, _ := setupService()
	id := seedListings(b, svc, 1)[0]
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		faker := gofakeit.New(0)
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(faker.IntRange(1, 5)))
			_, _ = svc.PlaceBid(ctx, id, bidder(faker), float64(nextBid))
		}
	})
}

// Benchmark 3: WinningBid on closed auctions - Single Threaded
func Benchmark_WinningBid_SingleThreaded(b *testing.B) {
	svc, clk := setupService()
	ids := seedListings(b, svc, b.N)
	faker := gofakeit.New(3)
	ctx := context.Background()

	for _, id := range ids {
		for j := 1; j <= 10; j++ {
			_, _ = svc.PlaceBid(ctx, id, bidder(faker), float64(100+j*10))
		}
	}
	clk.Advance(2 * time.Hour)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.WinningBid(ctx, ids[i]); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: Mixed Workload (active listing readers + bidders concurrently)
func Benchmark_MixedWorkload_SharedListing(b *testing.B) {
	svc, _ := setupService()
	id := seedListings(b, svc, 1)[0]
	ctx := context.Background()

	seed := gofakeit.New(4)
	for j := 1; j <= 50; j++ {
		_, _ = svc.PlaceBid(ctx, id, bidder(seed), float64(100+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 200

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		faker := gofakeit.New(0)
		for pb.Next() {
			if faker.IntRange(0, 9) < 3 {
				nextBid := atomic.AddInt64(&lastBid, int64(faker.IntRange(1, 5)))
				_, _ = svc.PlaceBid(ctx, id, bidder(faker), float64(nextBid))
				continue
			}
			if _, err := svc.GetListing(ctx, id); err != nil {
				b.Errorf("failed to read listing: %v", err)
			}
		}
	})
}
