package handler

import (
	"context"
	"net/http"

	complaints "artisan-market/internal/complaintService"
	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_complaint_service.go -package=handler artisan-market/services/complaints/handler ComplaintServiceInterface

type ComplaintServiceInterface interface {
	Submit(ctx context.Context, caller models.Caller, in models.ComplaintInput) (models.Complaint, error)
	Mine(ctx context.Context, caller models.Caller) ([]models.Complaint, error)
	List(ctx context.Context, f complaints.Filter) ([]models.Complaint, error)
	Get(ctx context.Context, id string) (models.Complaint, error)
	ChangeStatus(ctx context.Context, admin models.Caller, id, status, response string) (models.Complaint, error)
}

type ComplaintsHandler struct {
	service ComplaintServiceInterface
	images  helpers.ImageStore
}

func NewComplaintsHandler(service ComplaintServiceInterface, images helpers.ImageStore) *ComplaintsHandler {
	return &ComplaintsHandler{service: service, images: images}
}

// SubmitHandler handles POST /complaints
func (h *ComplaintsHandler) SubmitHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "SubmitHandler")
	if !ok {
		return
	}

	var req helpers.ComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SubmitHandler", err)
		return
	}
	attachment, err := helpers.SaveImage(c, h.images, "attachment")
	if err != nil {
		helpers.HandleServiceError(c, "SubmitHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	complaint, err := h.service.Submit(c.Request.Context(), caller, req.ToInput(attachment.URL))
	if err != nil {
		attachment.Discard()
		helpers.HandleServiceError(c, "SubmitHandler", err, map[string]any{
			"caller":      caller.Identity,
			"target_kind": req.TargetKind,
			"target_id":   req.TargetID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, complaint, "complaint submitted successfully")
	helpers.LogSuccess("SubmitHandler", "complaint submitted successfully", map[string]any{
		"complaint_id": complaint.ID,
		"caller":       caller.Identity,
		"severity":     complaint.Severity,
	})
}

// MineHandler handles GET /complaints/mine
func (h *ComplaintsHandler) MineHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "MineHandler")
	if !ok {
		return
	}
	list, err := h.service.Mine(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "MineHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "complaints retrieved successfully")
}

// ListHandler handles GET /admin/complaints?status=&severity=
func (h *ComplaintsHandler) ListHandler(c *gin.Context) {
	f := complaints.Filter{Status: c.Query("status"), Severity: c.Query("severity")}
	list, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		helpers.HandleServiceError(c, "ListHandler", err, map[string]any{"status": f.Status, "severity": f.Severity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "complaints retrieved successfully")
}

// GetHandler handles GET /admin/complaints/:id
func (h *ComplaintsHandler) GetHandler(c *gin.Context) {
	id := c.Param("id")
	complaint, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetHandler", err, map[string]any{"complaint_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, complaint, "complaint retrieved successfully")
}

// ChangeStatusHandler handles PUT /admin/complaints/:id/status
func (h *ComplaintsHandler) ChangeStatusHandler(c *gin.Context) {
	admin, ok := helpers.RequireCaller(c, "ChangeStatusHandler")
	if !ok {
		return
	}
	id := c.Param("id")

	var req helpers.ComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChangeStatusHandler", err)
		return
	}

	complaint, err := h.service.ChangeStatus(c.Request.Context(), admin, id, req.Status, req.Response)
	if err != nil {
		helpers.HandleServiceError(c, "ChangeStatusHandler", err, map[string]any{"complaint_id": id, "status": req.Status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, complaint, "complaint status updated")
	helpers.LogSuccess("ChangeStatusHandler", "complaint status updated", map[string]any{
		"complaint_id": id,
		"status":       complaint.Status,
		"admin":        admin.Identity,
	})
}
