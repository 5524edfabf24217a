package handler

import (
	"context"
	"net/http"

	identity "artisan-market/internal/identityService"
	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_identity_service.go -package=handler artisan-market/services/identity/handler IdentityServiceInterface

type IdentityServiceInterface interface {
	Register(ctx context.Context, kind models.PrincipalKind, in identity.RegisterInput, caller *models.Caller) (models.Principal, error)
	Login(ctx context.Context, kind models.PrincipalKind, email, password string) (identity.Session, error)
	Profile(ctx context.Context, caller models.Caller) (models.Principal, error)
	UpdateProfile(ctx context.Context, caller models.Caller, update models.ProfileUpdate) (models.Principal, error)
}

type IdentityHandler struct {
	service IdentityServiceInterface
}

func NewIdentityHandler(service IdentityServiceInterface) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// RegisterHandler handles POST /{kind}/register
func (h *IdentityHandler) RegisterHandler(kind models.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req helpers.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "RegisterHandler", err)
			return
		}

		var caller *models.Caller
		if cl, ok := helpers.CallerFromContext(c); ok {
			caller = &cl
		}

		p, err := h.service.Register(c.Request.Context(), kind, identity.RegisterInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Mobile:    req.Mobile,
		}, caller)
		if err != nil {
			helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"kind": kind, "email": req.Email})
			return
		}

		utils.JSONResponse(c, http.StatusCreated, p, "registered successfully")
		helpers.LogSuccess("RegisterHandler", "principal registered", map[string]any{
			"kind":     kind,
			"identity": p.Identity(),
		})
	}
}

// LoginHandler handles POST /{kind}/login
func (h *IdentityHandler) LoginHandler(kind models.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req helpers.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "LoginHandler", err)
			return
		}

		session, err := h.service.Login(c.Request.Context(), kind, req.Email, req.Password)
		if err != nil {
			helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"kind": kind, "email": req.Email})
			return
		}

		utils.JSONResponse(c, http.StatusOK, session, "login successful")
		helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
			"kind":     kind,
			"identity": session.Identity,
		})
	}
}

// ProfileHandler handles GET /profile
func (h *IdentityHandler) ProfileHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "ProfileHandler")
	if !ok {
		return
	}
	p, err := h.service.Profile(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "ProfileHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, p, "profile retrieved successfully")
}

// UpdateProfileHandler handles PUT /profile
func (h *IdentityHandler) UpdateProfileHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "UpdateProfileHandler")
	if !ok {
		return
	}

	var req helpers.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), caller, models.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Mobile:    req.Mobile,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated", map[string]any{"caller": caller.Identity})
}
