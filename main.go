package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bidding "artisan-market/internal/biddingService"
	"artisan-market/internal/cache"
	catalog "artisan-market/internal/catalogService"
	complaints "artisan-market/internal/complaintService"
	"artisan-market/internal/config"
	events "artisan-market/internal/eventService"
	identity "artisan-market/internal/identityService"
	"artisan-market/internal/invoice"
	orders "artisan-market/internal/orderService"
	"artisan-market/internal/payment"
	"artisan-market/internal/repository"
	"artisan-market/internal/server"
	"artisan-market/internal/uploads"
	"artisan-market/utils"
)

const shutdownTimeout = 10 * time.Second

// store is everything the services persist through
type store interface {
	repository.ListingStore
	repository.PrincipalStore
	repository.CatalogStore
	repository.OrderStore
	repository.EventStore
	repository.ComplaintStore
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore := openStore(ctx, cfg)

	var names identity.NameCache
	if cfg.RedisConfig.Addr != "" {
		client, err := cache.NewRedisClient(cfg.RedisConfig.Addr)
		if err != nil {
			utils.Fatal("failed to connect to redis", map[string]any{"addr": cfg.RedisConfig.Addr, "error": err.Error()})
		}
		defer client.Close()
		names = cache.NewNameCache(client, cfg.NameCacheTTL)
	}

	identitySvc := identity.NewService(repo, identity.JWT{Secret: []byte(cfg.JWTSecret), TokenTTL: cfg.TokenTTL}).
		WithNameCache(names)
	directory := identity.NewDirectory(repo, names)
	biddingSvc := bidding.NewBiddingService(repo, directory, bidding.WithFeeRate(cfg.PlatformFeeRate))
	catalogSvc := catalog.NewCatalogService(repo)
	gateway := newGateway(cfg)
	orderSvc := orders.NewOrderService(repo, repo, gateway)
	eventSvc := events.NewEventService(repo, gateway)
	complaintSvc := complaints.NewComplaintService(repo, directory)

	images, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		utils.Fatal("failed to prepare upload directory", map[string]any{"dir": cfg.UploadDir, "error": err.Error()})
	}

	router := server.SetupRouter(server.Dependencies{
		Identity:   identitySvc,
		Bidding:    biddingSvc,
		Catalog:    catalogSvc,
		Orders:     orderSvc,
		Events:     eventSvc,
		Complaints: complaintSvc,
		Uploads:    images,
		Invoices:   loadInvoiceRenderer(cfg),
	})

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router}
	go func() {
		utils.Info("Starting marketplace server", map[string]any{"address": cfg.ServerAddress})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down marketplace server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	if err := closeStore(shutdownCtx); err != nil {
		utils.Error("store shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openStore connects to MongoDB when configured and falls back to the in-memory repository
func openStore(ctx context.Context, cfg *config.Config) (store, func(context.Context) error) {
	if cfg.MongoConfig.URI == "" {
		utils.Warn("MONGO_URI not set, using in-memory repository", nil)
		return repository.NewMemoryRepo(), func(context.Context) error { return nil }
	}

	mongoStore, err := repository.ConnectMongo(ctx, cfg.MongoConfig.URI, cfg.MongoConfig.Database)
	if err != nil {
		utils.Fatal("failed to connect to mongo", map[string]any{"error": err.Error()})
	}
	utils.Info("Connected to MongoDB", map[string]any{"database": cfg.MongoConfig.Database})
	return mongoStore, mongoStore.Close
}

// loadInvoiceRenderer returns nil when the font is unusable; invoices are then served as JSON
func loadInvoiceRenderer(cfg *config.Config) *invoice.PDFRenderer {
	renderer, err := invoice.LoadPDFRenderer(cfg.FontPath)
	if err != nil {
		utils.Warn("invoice font unavailable, PDF invoices disabled", map[string]any{"font": cfg.FontPath, "error": err.Error()})
		return nil
	}
	return renderer
}

func newGateway(cfg *config.Config) payment.Gateway {
	if cfg.StripeSecretKey == "" {
		utils.Warn("STRIPE_SECRET_KEY not set, payments disabled", nil)
		return payment.Disabled()
	}
	gateway, err := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey:  cfg.StripeSecretKey,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
		Currency:   cfg.Currency,
	})
	if err != nil {
		utils.Fatal("failed to initialize payment gateway", map[string]any{"error": err.Error()})
	}
	return gateway
}
