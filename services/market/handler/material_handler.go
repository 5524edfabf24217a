package handler

import (
	"net/http"

	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

// CreateMaterialHandler handles POST /materials
func (h *MarketHandler) CreateMaterialHandler(c *gin.Context) {
	h.createItem(c, "CreateMaterialHandler", models.ItemMaterial, h.catalog.CreateMaterial)
}

// ListMaterialsHandler handles GET /materials
func (h *MarketHandler) ListMaterialsHandler(c *gin.Context) {
	materials, err := h.catalog.ListMaterials(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListMaterialsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, materials, "materials retrieved successfully")
}

// SellerMaterialsHandler handles GET /materials/seller
func (h *MarketHandler) SellerMaterialsHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "SellerMaterialsHandler")
	if !ok {
		return
	}
	materials, err := h.catalog.SellerMaterials(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "SellerMaterialsHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, materials, "materials retrieved successfully")
}

// GetMaterialHandler handles GET /materials/:id
func (h *MarketHandler) GetMaterialHandler(c *gin.Context) {
	materialID := c.Param("id")
	m, err := h.catalog.GetMaterial(c.Request.Context(), materialID)
	if err != nil {
		helpers.HandleServiceError(c, "GetMaterialHandler", err, map[string]any{"material_id": materialID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, m, "material retrieved successfully")
}

// MaterialCategoriesHandler handles GET /materials/categories
func (h *MarketHandler) MaterialCategoriesHandler(c *gin.Context) {
	categories, err := h.catalog.MaterialCategories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "MaterialCategoriesHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}
