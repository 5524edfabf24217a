package server

import (
	bidding "artisan-market/internal/biddingService"
	catalog "artisan-market/internal/catalogService"
	complaints "artisan-market/internal/complaintService"
	events "artisan-market/internal/eventService"
	identity "artisan-market/internal/identityService"
	"artisan-market/internal/invoice"
	"artisan-market/internal/models"
	orders "artisan-market/internal/orderService"
	"artisan-market/internal/uploads"
	adminHandler "artisan-market/services/admin/handler"
	biddingHandler "artisan-market/services/bidding/handler"
	complaintsHandler "artisan-market/services/complaints/handler"
	eventsHandler "artisan-market/services/events/handler"
	"artisan-market/services/helpers"
	identityHandler "artisan-market/services/identity/handler"
	marketHandler "artisan-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the HTTP layer is wired to.
// Uploads and Invoices are optional: without them image fields are ignored
// and invoices are served as JSON only.
type Dependencies struct {
	Identity   *identity.Service
	Bidding    *bidding.BiddingService
	Catalog    *catalog.CatalogService
	Orders     *orders.OrderService
	Events     *events.EventService
	Complaints *complaints.ComplaintService
	Uploads    *uploads.Store
	Invoices   *invoice.PDFRenderer
}

var bidderRoles = []models.PrincipalKind{models.KindBuyer, models.KindSeller, models.KindInstructor}

// complainantRoles may file complaints; admins handle them instead
var complainantRoles = bidderRoles

// SetupRouter configures all Gin routes for the application
func SetupRouter(d Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	var images helpers.ImageStore
	if d.Uploads != nil {
		images = d.Uploads
		router.Static(uploads.PublicPrefix, d.Uploads.Dir())
	}
	var renderer biddingHandler.InvoiceRenderer
	if d.Invoices != nil {
		renderer = d.Invoices
	}

	identityH := identityHandler.NewIdentityHandler(d.Identity)
	biddingH := biddingHandler.NewBiddingHandler(d.Bidding, images, renderer)
	marketH := marketHandler.NewMarketHandler(d.Catalog, d.Orders, images)
	adminH := adminHandler.NewAdminHandler(d.Bidding, d.Identity, d.Catalog, d.Orders, d.Events)
	eventsH := eventsHandler.NewEventsHandler(d.Events, images)
	complaintsH := complaintsHandler.NewComplaintsHandler(d.Complaints, images)

	auth := AuthMiddleware(d.Identity)

	for _, kind := range []models.PrincipalKind{models.KindBuyer, models.KindSeller, models.KindInstructor} {
		router.POST("/"+string(kind)+"/register", identityH.RegisterHandler(kind))
		router.POST("/"+string(kind)+"/login", identityH.LoginHandler(kind))
	}
	// the first admin registers anonymously, later ones need an admin token
	router.POST("/admin/register", OptionalAuth(d.Identity), identityH.RegisterHandler(models.KindAdmin))
	router.POST("/admin/login", identityH.LoginHandler(models.KindAdmin))

	router.GET("/profile", auth, identityH.ProfileHandler)
	router.PUT("/profile", auth, identityH.UpdateProfileHandler)

	bids := router.Group("/bids")
	{
		bids.GET("/active", biddingH.ActiveListingsHandler)
		bids.GET("/:id", biddingH.GetListingHandler)

		bids.POST("/create", auth, RequireRoles(models.KindInstructor), biddingH.CreateListingHandler)
		bids.POST("/instructor-request", auth, RequireRoles(models.KindInstructor), biddingH.CreateListingHandler)
		bids.POST("/request", auth, RequireRoles(models.KindBuyer), biddingH.CreateListingHandler)
		bids.POST("/seller-request", auth, RequireRoles(models.KindSeller), biddingH.CreateListingHandler)

		bids.POST("/:id/place-bid", auth, RequireRoles(bidderRoles...), biddingH.PlaceBidHandler)
		bids.GET("/participated", auth, biddingH.ParticipatedHandler)
		bids.GET("/summary", auth, biddingH.SummaryHandler)
		bids.GET("/mine", auth, biddingH.MyListingsHandler)
		bids.GET("/:id/winner", auth, biddingH.WinningBidHandler)
		bids.GET("/invoice/:id", auth, biddingH.InvoiceHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", marketH.ListProductsHandler)
		products.GET("/:id", marketH.GetProductHandler)
		products.POST("", auth, RequireRoles(models.KindSeller), marketH.CreateProductHandler)
		products.GET("/seller", auth, RequireRoles(models.KindSeller), marketH.SellerProductsHandler)
	}

	materials := router.Group("/materials")
	{
		materials.GET("", marketH.ListMaterialsHandler)
		materials.GET("/categories", marketH.MaterialCategoriesHandler)
		materials.GET("/:id", marketH.GetMaterialHandler)
		materials.POST("", auth, RequireRoles(models.KindSeller), marketH.CreateMaterialHandler)
		materials.GET("/seller", auth, RequireRoles(models.KindSeller), marketH.SellerMaterialsHandler)
	}

	eventsGroup := router.Group("/events")
	{
		eventsGroup.GET("", eventsH.ListEventsHandler)
		eventsGroup.GET("/search", eventsH.SearchEventsHandler)
		eventsGroup.POST("/filter", eventsH.FilterEventsHandler)
		eventsGroup.GET("/:id", eventsH.GetEventHandler)

		eventsGroup.POST("/:id/register", auth, RequireRoles(models.KindBuyer), eventsH.RegisterHandler)
		eventsGroup.POST("/:id/cancel", auth, RequireRoles(models.KindBuyer), eventsH.CancelRegistrationHandler)
		eventsGroup.GET("/registered", auth, RequireRoles(models.KindBuyer), eventsH.MyRegistrationsHandler)

		eventsGroup.POST("", auth, RequireRoles(models.KindInstructor), eventsH.CreateEventHandler)
		eventsGroup.GET("/mine", auth, RequireRoles(models.KindInstructor), eventsH.HostedEventsHandler)
		eventsGroup.PUT("/:id", auth, RequireRoles(models.KindInstructor), eventsH.UpdateEventHandler)
		eventsGroup.DELETE("/:id", auth, RequireRoles(models.KindInstructor), eventsH.DeleteEventHandler)
	}

	complaintsGroup := router.Group("/complaints", auth, RequireRoles(complainantRoles...))
	{
		complaintsGroup.POST("", complaintsH.SubmitHandler)
		complaintsGroup.GET("/mine", complaintsH.MineHandler)
	}

	for _, kind := range []models.BasketKind{models.BasketCart, models.BasketWishlist} {
		basket := router.Group("/"+string(kind), auth, RequireRoles(models.KindBuyer))
		basket.GET("", marketH.BasketHandler(kind))
		basket.POST("/:productId", marketH.AddToBasketHandler(kind))
		basket.DELETE("/:productId", marketH.RemoveFromBasketHandler(kind))
	}

	payments := router.Group("/payments", auth, RequireRoles(models.KindBuyer))
	{
		payments.POST("/cart-session", marketH.CartSessionHandler)
		payments.POST("/verify", marketH.VerifyPaymentHandler)
		payments.POST("/event-session/:id", eventsH.EventSessionHandler)
		payments.POST("/event-verify", eventsH.VerifyEventPaymentHandler)
	}

	ordersGroup := router.Group("/orders", auth)
	{
		ordersGroup.GET("/buyer", RequireRoles(models.KindBuyer), marketH.BuyerOrdersHandler)
		ordersGroup.GET("/seller", RequireRoles(models.KindSeller), marketH.SellerOrdersHandler)
		ordersGroup.PUT("/:id/status", RequireRoles(models.KindSeller), marketH.UpdateOrderStatusHandler)
	}

	admin := router.Group("/admin", auth, RequireRoles(models.KindAdmin))
	{
		admin.GET("/bids", adminH.ListListingsHandler)
		admin.GET("/bid-requests", adminH.ListListingsHandler)
		admin.PUT("/bid-requests/:id/approve", adminH.ModerateHandler(models.StatusApproved))
		admin.PUT("/bid-requests/:id/reject", adminH.ModerateHandler(models.StatusRejected))
		admin.PUT("/bids/:id/status", adminH.SetStatusHandler)
		admin.GET("/dashboard/stats", adminH.DashboardStatsHandler)
		admin.GET("/principals/:kind", adminH.ListPrincipalsHandler)
		admin.PUT("/principals/:kind/:id/block", adminH.BlockHandler(true))
		admin.PUT("/principals/:kind/:id/unblock", adminH.BlockHandler(false))
		admin.GET("/complaints", complaintsH.ListHandler)
		admin.GET("/complaints/:id", complaintsH.GetHandler)
		admin.PUT("/complaints/:id/status", complaintsH.ChangeStatusHandler)
	}

	return router
}
