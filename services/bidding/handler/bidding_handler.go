package handler

import (
	"context"
	"net/http"

	bidding "artisan-market/internal/biddingService"
	"artisan-market/internal/invoice"
	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_bidding_service.go -package=handler artisan-market/services/bidding/handler BiddingServiceInterface,InvoiceRenderer

type BiddingServiceInterface interface {
	CreateListing(ctx context.Context, caller models.Caller, in models.ListingInput) (models.Listing, error)
	PlaceBid(ctx context.Context, listingID string, caller models.Caller, amount float64) (bidding.BidResult, error)
	GetListing(ctx context.Context, listingID string) (bidding.ListingView, error)
	ActiveListings(ctx context.Context) ([]bidding.ListingView, error)
	MyListings(ctx context.Context, caller models.Caller) ([]bidding.ListingView, error)
	ParticipatedListings(ctx context.Context, caller models.Caller) ([]bidding.ParticipatedListing, error)
	Summary(ctx context.Context, caller models.Caller) (bidding.Summary, error)
	WinningBid(ctx context.Context, listingID string) (models.BidEntry, error)
	Invoice(ctx context.Context, listingID string, caller models.Caller) (models.Invoice, error)
}

// InvoiceRenderer turns an invoice into a downloadable PDF
type InvoiceRenderer interface {
	Render(inv models.Invoice) ([]byte, error)
}

type BiddingHandler struct {
	service  BiddingServiceInterface
	images   helpers.ImageStore
	renderer InvoiceRenderer
}

func NewBiddingHandler(service BiddingServiceInterface, images helpers.ImageStore, renderer InvoiceRenderer) *BiddingHandler {
	return &BiddingHandler{service: service, images: images, renderer: renderer}
}

// CreateListingHandler handles POST /bids/create and the three request routes
func (h *BiddingHandler) CreateListingHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "CreateListingHandler")
	if !ok {
		return
	}

	var req helpers.ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	input, err := req.ToInput("")
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	image, err := helpers.SaveImage(c, h.images, "image")
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	input.Image = image.URL

	listing, err := h.service.CreateListing(c.Request.Context(), caller, input)
	if err != nil {
		image.Discard()
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreatedResponse{ID: listing.ID}, "listing submitted for approval")
	helpers.LogSuccess("CreateListingHandler", "listing created", map[string]any{
		"listing_id": listing.ID,
		"creator":    caller.Identity,
		"role":       caller.Role,
	})
}

// PlaceBidHandler handles POST /bids/:id/place-bid
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "PlaceBidHandler")
	if !ok {
		return
	}
	listingID := c.Param("id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(c.Request.Context(), listingID, caller, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"listing_id": listingID,
			"bidder":     caller.Identity,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"listing_id": listingID,
		"bidder":     caller.Identity,
		"amount":     req.Amount,
		"total_bids": result.TotalBids,
	})
}

// GetListingHandler handles GET /bids/:id
func (h *BiddingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("id")
	listing, err := h.service.GetListing(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, listing, "listing retrieved successfully")
}

// ActiveListingsHandler handles GET /bids/active
func (h *BiddingHandler) ActiveListingsHandler(c *gin.Context) {
	listings, err := h.service.ActiveListings(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ActiveListingsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, listings, "active listings retrieved successfully")
	helpers.LogSuccess("ActiveListingsHandler", "active listings retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// MyListingsHandler handles GET /bids/mine
func (h *BiddingHandler) MyListingsHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "MyListingsHandler")
	if !ok {
		return
	}
	listings, err := h.service.MyListings(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "MyListingsHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// ParticipatedHandler handles GET /bids/participated
func (h *BiddingHandler) ParticipatedHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "ParticipatedHandler")
	if !ok {
		return
	}
	listings, err := h.service.ParticipatedListings(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "ParticipatedHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listings, "participated listings retrieved successfully")
	helpers.LogSuccess("ParticipatedHandler", "participated listings retrieved successfully", map[string]any{
		"caller": caller.Identity,
		"count":  len(listings),
	})
}

// SummaryHandler handles GET /bids/summary
func (h *BiddingHandler) SummaryHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "SummaryHandler")
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "SummaryHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, summary, "summary retrieved successfully")
}

// WinningBidHandler handles GET /bids/:id/winner
func (h *BiddingHandler) WinningBidHandler(c *gin.Context) {
	listingID := c.Param("id")
	bid, err := h.service.WinningBid(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "WinningBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "winning bid retrieved successfully")
	helpers.LogSuccess("WinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"listing_id": listingID,
		"bidder":     bid.BidderIdentity,
		"amount":     bid.Amount,
	})
}

// InvoiceHandler handles GET /bids/invoice/:id. The PDF is the default; ?format=json returns the figures.
func (h *BiddingHandler) InvoiceHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "InvoiceHandler")
	if !ok {
		return
	}
	listingID := c.Param("id")
	fields := map[string]any{"listing_id": listingID, "caller": caller.Identity}

	inv, err := h.service.Invoice(c.Request.Context(), listingID, caller)
	if err != nil {
		helpers.HandleServiceError(c, "InvoiceHandler", err, fields)
		return
	}

	if c.Query("format") == "json" || h.renderer == nil {
		utils.JSONResponse(c, http.StatusOK, inv, "invoice generated successfully")
		return
	}

	pdf, err := h.renderer.Render(inv)
	if err != nil {
		helpers.HandleServiceError(c, "InvoiceHandler", err, fields)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+invoice.FileName(inv)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
	helpers.LogSuccess("InvoiceHandler", "invoice generated successfully", fields)
}
