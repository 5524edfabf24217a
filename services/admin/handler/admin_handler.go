package handler

import (
	"context"
	"net/http"

	bidding "artisan-market/internal/biddingService"
	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_admin_services.go -package=handler artisan-market/services/admin/handler ListingModerator,PrincipalManager,ProductCounter,OrderCounter,EventCounter

type ListingModerator interface {
	AllListings(ctx context.Context, status models.ListingStatus) ([]bidding.ListingView, error)
	SetStatus(ctx context.Context, listingID string, status models.ListingStatus, admin models.Caller) (models.Listing, error)
	ListingStats(ctx context.Context) (bidding.ListingStats, error)
}

type PrincipalManager interface {
	ListPrincipals(ctx context.Context, kind models.PrincipalKind) ([]models.Principal, error)
	SetBlocked(ctx context.Context, kind models.PrincipalKind, id string, blocked bool) error
	CountPrincipals(ctx context.Context) (map[models.PrincipalKind]int64, error)
}

type ProductCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type OrderCounter interface {
	CountOrders(ctx context.Context) (int64, error)
}

type EventCounter interface {
	CountEvents(ctx context.Context) (int64, error)
}

type AdminHandler struct {
	listings   ListingModerator
	principals PrincipalManager
	products   ProductCounter
	orders     OrderCounter
	events     EventCounter
}

func NewAdminHandler(listings ListingModerator, principals PrincipalManager, products ProductCounter, orders OrderCounter, events EventCounter) *AdminHandler {
	return &AdminHandler{listings: listings, principals: principals, products: products, orders: orders, events: events}
}

// ListListingsHandler handles GET /admin/bids and GET /admin/bid-requests, optionally ?status=
func (h *AdminHandler) ListListingsHandler(c *gin.Context) {
	var status models.ListingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := models.ParseListingStatus(raw)
		if !ok {
			helpers.HandleServiceError(c, "ListListingsHandler", marketerrors.WithDetail(marketerrors.ErrInvalidStatus,
				"status must be pending, approved or rejected"), map[string]any{"status": raw})
			return
		}
		status = parsed
	}

	listings, err := h.listings.AllListings(c.Request.Context(), status)
	if err != nil {
		helpers.HandleServiceError(c, "ListListingsHandler", err, map[string]any{"status": status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"status": status,
		"count":  len(listings),
	})
}

// ModerateHandler handles PUT /admin/bid-requests/:id/approve and /reject
func (h *AdminHandler) ModerateHandler(status models.ListingStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.setStatus(c, "ModerateHandler", status)
	}
}

// SetStatusHandler handles PUT /admin/bids/:id/status
func (h *AdminHandler) SetStatusHandler(c *gin.Context) {
	var req helpers.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetStatusHandler", err)
		return
	}
	h.setStatus(c, "SetStatusHandler", models.ListingStatus(req.Status))
}

func (h *AdminHandler) setStatus(c *gin.Context, handlerName string, status models.ListingStatus) {
	admin, ok := helpers.RequireCaller(c, handlerName)
	if !ok {
		return
	}
	listingID := c.Param("id")

	listing, err := h.listings.SetStatus(c.Request.Context(), listingID, status, admin)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{
			"listing_id": listingID,
			"status":     status,
			"admin":      admin.Identity,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing "+string(listing.Status))
	helpers.LogSuccess(handlerName, "listing status updated", map[string]any{
		"listing_id": listingID,
		"status":     listing.Status,
		"admin":      admin.Identity,
	})
}

// DashboardStatsHandler handles GET /admin/dashboard/stats
func (h *AdminHandler) DashboardStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	principals, err := h.principals.CountPrincipals(ctx)
	if err != nil {
		helpers.HandleServiceError(c, "DashboardStatsHandler", err, nil)
		return
	}
	products, err := h.products.CountProducts(ctx)
	if err != nil {
		helpers.HandleServiceError(c, "DashboardStatsHandler", err, nil)
		return
	}
	orders, err := h.orders.CountOrders(ctx)
	if err != nil {
		helpers.HandleServiceError(c, "DashboardStatsHandler", err, nil)
		return
	}
	listings, err := h.listings.ListingStats(ctx)
	if err != nil {
		helpers.HandleServiceError(c, "DashboardStatsHandler", err, nil)
		return
	}
	events, err := h.events.CountEvents(ctx)
	if err != nil {
		helpers.HandleServiceError(c, "DashboardStatsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DashboardStats{
		Principals: principals,
		Products:   products,
		Orders:     orders,
		Listings:   listings,
		Events:     events,
	}, "dashboard stats retrieved successfully")
}

// ListPrincipalsHandler handles GET /admin/principals/:kind
func (h *AdminHandler) ListPrincipalsHandler(c *gin.Context) {
	kind, ok := models.ParsePrincipalKind(c.Param("kind"))
	if !ok {
		helpers.HandleServiceError(c, "ListPrincipalsHandler", marketerrors.WithDetail(marketerrors.ErrInvalidInput,
			"unknown principal kind"), map[string]any{"kind": c.Param("kind")})
		return
	}

	principals, err := h.principals.ListPrincipals(c.Request.Context(), kind)
	if err != nil {
		helpers.HandleServiceError(c, "ListPrincipalsHandler", err, map[string]any{"kind": kind})
		return
	}
	utils.JSONResponse(c, http.StatusOK, principals, "principals retrieved successfully")
}

// BlockHandler handles PUT /admin/principals/:kind/:id/block and /unblock
func (h *AdminHandler) BlockHandler(blocked bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := models.ParsePrincipalKind(c.Param("kind"))
		if !ok {
			helpers.HandleServiceError(c, "BlockHandler", marketerrors.WithDetail(marketerrors.ErrInvalidInput,
				"unknown principal kind"), map[string]any{"kind": c.Param("kind")})
			return
		}
		id := c.Param("id")
		fields := map[string]any{"kind": kind, "id": id, "blocked": blocked}

		if err := h.principals.SetBlocked(c.Request.Context(), kind, id, blocked); err != nil {
			helpers.HandleServiceError(c, "BlockHandler", err, fields)
			return
		}

		message := "account unblocked"
		if blocked {
			message = "account blocked"
		}
		utils.JSONResponse(c, http.StatusOK, gin.H{"id": id, "blocked": blocked}, message)
		helpers.LogSuccess("BlockHandler", message, fields)
	}
}
