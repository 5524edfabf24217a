package handler

import (
	"context"
	"net/http"

	"artisan-market/internal/models"
	"artisan-market/internal/payment"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_market_services.go -package=handler artisan-market/services/market/handler CatalogServiceInterface,OrderServiceInterface

type CatalogServiceInterface interface {
	CreateProduct(ctx context.Context, caller models.Caller, in models.ProductInput) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	SellerProducts(ctx context.Context, caller models.Caller) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	AddToBasket(ctx context.Context, kind models.BasketKind, caller models.Caller, productID string) ([]models.Product, error)
	RemoveFromBasket(ctx context.Context, kind models.BasketKind, caller models.Caller, productID string) ([]models.Product, error)
	Basket(ctx context.Context, kind models.BasketKind, caller models.Caller) ([]models.Product, error)

	CreateMaterial(ctx context.Context, caller models.Caller, in models.ProductInput) (models.Product, error)
	ListMaterials(ctx context.Context) ([]models.Product, error)
	SellerMaterials(ctx context.Context, caller models.Caller) ([]models.Product, error)
	GetMaterial(ctx context.Context, id string) (models.Product, error)
	MaterialCategories(ctx context.Context) ([]string, error)
}

type OrderServiceInterface interface {
	CreateCartSession(ctx context.Context, caller models.Caller) (payment.Session, error)
	VerifyPayment(ctx context.Context, caller models.Caller, sessionID string) (models.Order, error)
	BuyerOrders(ctx context.Context, caller models.Caller) ([]models.Order, error)
	SellerOrders(ctx context.Context, caller models.Caller) ([]models.Order, error)
	UpdateStatus(ctx context.Context, caller models.Caller, orderID, status string) (models.Order, error)
}

type MarketHandler struct {
	catalog CatalogServiceInterface
	orders  OrderServiceInterface
	images  helpers.ImageStore
}

func NewMarketHandler(catalog CatalogServiceInterface, orders OrderServiceInterface, images helpers.ImageStore) *MarketHandler {
	return &MarketHandler{catalog: catalog, orders: orders, images: images}
}

// CreateProductHandler handles POST /products
func (h *MarketHandler) CreateProductHandler(c *gin.Context) {
	h.createItem(c, "CreateProductHandler", models.ItemProduct, h.catalog.CreateProduct)
}

type createFunc func(ctx context.Context, caller models.Caller, in models.ProductInput) (models.Product, error)

// createItem binds a product form, stores its image and calls create
func (h *MarketHandler) createItem(c *gin.Context, handlerName string, kind models.ItemKind, create createFunc) {
	caller, ok := helpers.RequireCaller(c, handlerName)
	if !ok {
		return
	}

	var req helpers.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}
	image, err := helpers.SaveImage(c, h.images, "image")
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"caller": caller.Identity})
		return
	}

	p, err := create(c.Request.Context(), caller, models.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       image.URL,
	})
	if err != nil {
		image.Discard()
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, string(kind)+" created successfully")
	helpers.LogSuccess(handlerName, string(kind)+" created successfully", map[string]any{
		"product_id": p.ID,
		"kind":       kind,
		"seller":     caller.Identity,
	})
}

// ListProductsHandler handles GET /products
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListProductsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// SellerProductsHandler handles GET /products/seller
func (h *MarketHandler) SellerProductsHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "SellerProductsHandler")
	if !ok {
		return
	}
	products, err := h.catalog.SellerProducts(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "SellerProductsHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// GetProductHandler handles GET /products/:id
func (h *MarketHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("id")
	p, err := h.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		helpers.HandleServiceError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, p, "product retrieved successfully")
}

// AddToBasketHandler handles POST /cart/:productId and POST /wishlist/:productId
func (h *MarketHandler) AddToBasketHandler(kind models.BasketKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.RequireCaller(c, "AddToBasketHandler")
		if !ok {
			return
		}
		productID := c.Param("productId")
		products, err := h.catalog.AddToBasket(c.Request.Context(), kind, caller, productID)
		if err != nil {
			helpers.HandleServiceError(c, "AddToBasketHandler", err, map[string]any{
				"basket":     kind,
				"product_id": productID,
				"caller":     caller.Identity,
			})
			return
		}

		utils.JSONResponse(c, http.StatusOK, products, "added to "+string(kind))
		helpers.LogSuccess("AddToBasketHandler", "added to "+string(kind), map[string]any{
			"product_id": productID,
			"caller":     caller.Identity,
		})
	}
}

// RemoveFromBasketHandler handles DELETE /cart/:productId and DELETE /wishlist/:productId
func (h *MarketHandler) RemoveFromBasketHandler(kind models.BasketKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.RequireCaller(c, "RemoveFromBasketHandler")
		if !ok {
			return
		}
		productID := c.Param("productId")
		products, err := h.catalog.RemoveFromBasket(c.Request.Context(), kind, caller, productID)
		if err != nil {
			helpers.HandleServiceError(c, "RemoveFromBasketHandler", err, map[string]any{
				"basket":     kind,
				"product_id": productID,
				"caller":     caller.Identity,
			})
			return
		}
		utils.JSONResponse(c, http.StatusOK, products, "removed from "+string(kind))
	}
}

// BasketHandler handles GET /cart and GET /wishlist
func (h *MarketHandler) BasketHandler(kind models.BasketKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.RequireCaller(c, "BasketHandler")
		if !ok {
			return
		}
		products, err := h.catalog.Basket(c.Request.Context(), kind, caller)
		if err != nil {
			helpers.HandleServiceError(c, "BasketHandler", err, map[string]any{"basket": kind, "caller": caller.Identity})
			return
		}
		utils.JSONResponse(c, http.StatusOK, products, string(kind)+" retrieved successfully")
	}
}

// CartSessionHandler handles POST /payments/cart-session
func (h *MarketHandler) CartSessionHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "CartSessionHandler")
	if !ok {
		return
	}
	session, err := h.orders.CreateCartSession(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "CartSessionHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "checkout session created")
	helpers.LogSuccess("CartSessionHandler", "checkout session created", map[string]any{
		"session_id": session.ID,
		"caller":     caller.Identity,
	})
}

// VerifyPaymentHandler handles POST /payments/verify
func (h *MarketHandler) VerifyPaymentHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "VerifyPaymentHandler")
	if !ok {
		return
	}
	var req helpers.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyPaymentHandler", err)
		return
	}

	order, err := h.orders.VerifyPayment(c.Request.Context(), caller, req.SessionID)
	if err != nil {
		helpers.HandleServiceError(c, "VerifyPaymentHandler", err, map[string]any{
			"session_id": req.SessionID,
			"caller":     caller.Identity,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "payment verified")
	helpers.LogSuccess("VerifyPaymentHandler", "payment verified", map[string]any{
		"order_id":   order.ID,
		"session_id": req.SessionID,
		"total":      order.TotalAmount,
	})
}

// BuyerOrdersHandler handles GET /orders/buyer
func (h *MarketHandler) BuyerOrdersHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "BuyerOrdersHandler")
	if !ok {
		return
	}
	list, err := h.orders.BuyerOrders(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "BuyerOrdersHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "orders retrieved successfully")
}

// SellerOrdersHandler handles GET /orders/seller
func (h *MarketHandler) SellerOrdersHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "SellerOrdersHandler")
	if !ok {
		return
	}
	list, err := h.orders.SellerOrders(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "SellerOrdersHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "orders retrieved successfully")
}

// UpdateOrderStatusHandler handles PUT /orders/:id/status
func (h *MarketHandler) UpdateOrderStatusHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "UpdateOrderStatusHandler")
	if !ok {
		return
	}
	orderID := c.Param("id")

	var req helpers.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateOrderStatusHandler", err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), caller, orderID, req.Status)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateOrderStatusHandler", err, map[string]any{
			"order_id": orderID,
			"status":   req.Status,
			"caller":   caller.Identity,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order status updated")
	helpers.LogSuccess("UpdateOrderStatusHandler", "order status updated", map[string]any{
		"order_id": orderID,
		"status":   order.Status,
	})
}
