package handler

import (
	"context"
	"net/http"

	events "artisan-market/internal/eventService"
	"artisan-market/internal/models"
	"artisan-market/internal/payment"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_event_service.go -package=handler artisan-market/services/events/handler EventServiceInterface

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, caller models.Caller, in models.EventDetails) (models.Event, error)
	ListEvents(ctx context.Context) ([]events.Summary, error)
	GetEvent(ctx context.Context, id string) (events.Summary, error)
	HostedEvents(ctx context.Context, caller models.Caller) ([]models.Event, error)
	FilterEvents(ctx context.Context, f events.Filter) ([]events.Summary, error)
	SearchEvents(ctx context.Context, term string) ([]events.Summary, error)
	Register(ctx context.Context, caller models.Caller, id string) (events.Attendance, error)
	CancelRegistration(ctx context.Context, caller models.Caller, id string) (events.Summary, error)
	MyRegistrations(ctx context.Context, caller models.Caller) ([]events.Attendance, error)
	UpdateEvent(ctx context.Context, caller models.Caller, id string, patch models.EventPatch) (models.Event, error)
	DeleteEvent(ctx context.Context, caller models.Caller, id string) error
	CreateEventSession(ctx context.Context, caller models.Caller, id string) (payment.Session, error)
	VerifyEventPayment(ctx context.Context, caller models.Caller, sessionID string) (events.Attendance, error)
}

type EventsHandler struct {
	service EventServiceInterface
	images  helpers.ImageStore
}

func NewEventsHandler(service EventServiceInterface, images helpers.ImageStore) *EventsHandler {
	return &EventsHandler{service: service, images: images}
}

// CreateEventHandler handles POST /events
func (h *EventsHandler) CreateEventHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "CreateEventHandler")
	if !ok {
		return
	}

	var req helpers.EventRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateEventHandler", err)
		return
	}
	poster, err := helpers.SaveImage(c, h.images, "poster")
	if err != nil {
		helpers.HandleServiceError(c, "CreateEventHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	e, err := h.service.CreateEvent(c.Request.Context(), caller, req.ToDetails(poster.URL))
	if err != nil {
		poster.Discard()
		helpers.HandleServiceError(c, "CreateEventHandler", err, map[string]any{"caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, e, "event created successfully")
	helpers.LogSuccess("CreateEventHandler", "event created successfully", map[string]any{
		"event_id":   e.ID,
		"instructor": caller.Identity,
	})
}

// ListEventsHandler handles GET /events
func (h *EventsHandler) ListEventsHandler(c *gin.Context) {
	list, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListEventsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "events retrieved successfully")
}

// GetEventHandler handles GET /events/:id
func (h *EventsHandler) GetEventHandler(c *gin.Context) {
	eventID := c.Param("id")
	e, err := h.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.HandleServiceError(c, "GetEventHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, e, "event retrieved successfully")
}

// HostedEventsHandler handles GET /events/mine
func (h *EventsHandler) HostedEventsHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "HostedEventsHandler")
	if !ok {
		return
	}
	list, err := h.service.HostedEvents(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "HostedEventsHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "events retrieved successfully")
}

// FilterEventsHandler handles POST /events/filter
func (h *EventsHandler) FilterEventsHandler(c *gin.Context) {
	var f events.Filter
	if err := c.ShouldBindJSON(&f); err != nil {
		helpers.HandleBindError(c, "FilterEventsHandler", err)
		return
	}
	list, err := h.service.FilterEvents(c.Request.Context(), f)
	if err != nil {
		helpers.HandleServiceError(c, "FilterEventsHandler", err, map[string]any{"type": f.Type, "date": f.Date})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "events retrieved successfully")
}

// SearchEventsHandler handles GET /events/search?term=
func (h *EventsHandler) SearchEventsHandler(c *gin.Context) {
	term := c.Query("term")
	list, err := h.service.SearchEvents(c.Request.Context(), term)
	if err != nil {
		helpers.HandleServiceError(c, "SearchEventsHandler", err, map[string]any{"term": term})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "events retrieved successfully")
}

// RegisterHandler handles POST /events/:id/register
func (h *EventsHandler) RegisterHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "RegisterHandler")
	if !ok {
		return
	}
	eventID := c.Param("id")

	attendance, err := h.service.Register(c.Request.Context(), caller, eventID)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"event_id": eventID, "caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attendance, "registered successfully")
	helpers.LogSuccess("RegisterHandler", "registered successfully", map[string]any{
		"event_id":       eventID,
		"caller":         caller.Identity,
		"payment_status": attendance.Registration.PaymentStatus,
	})
}

// CancelRegistrationHandler handles POST /events/:id/cancel
func (h *EventsHandler) CancelRegistrationHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "CancelRegistrationHandler")
	if !ok {
		return
	}
	eventID := c.Param("id")

	e, err := h.service.CancelRegistration(c.Request.Context(), caller, eventID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelRegistrationHandler", err, map[string]any{"event_id": eventID, "caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, e, "registration cancelled")
}

// MyRegistrationsHandler handles GET /events/registered
func (h *EventsHandler) MyRegistrationsHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "MyRegistrationsHandler")
	if !ok {
		return
	}
	list, err := h.service.MyRegistrations(c.Request.Context(), caller)
	if err != nil {
		helpers.HandleServiceError(c, "MyRegistrationsHandler", err, map[string]any{"caller": caller.Identity})
		return
	}
	utils.JSONResponse(c, http.StatusOK, list, "registrations retrieved successfully")
}

// UpdateEventHandler handles PUT /events/:id
func (h *EventsHandler) UpdateEventHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "UpdateEventHandler")
	if !ok {
		return
	}
	eventID := c.Param("id")

	var req helpers.EventPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateEventHandler", err)
		return
	}

	e, err := h.service.UpdateEvent(c.Request.Context(), caller, eventID, req.ToPatch())
	if err != nil {
		helpers.HandleServiceError(c, "UpdateEventHandler", err, map[string]any{"event_id": eventID, "caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, e, "event updated successfully")
	helpers.LogSuccess("UpdateEventHandler", "event updated successfully", map[string]any{"event_id": eventID})
}

// DeleteEventHandler handles DELETE /events/:id
func (h *EventsHandler) DeleteEventHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "DeleteEventHandler")
	if !ok {
		return
	}
	eventID := c.Param("id")

	if err := h.service.DeleteEvent(c.Request.Context(), caller, eventID); err != nil {
		helpers.HandleServiceError(c, "DeleteEventHandler", err, map[string]any{"event_id": eventID, "caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CreatedResponse{ID: eventID}, "event deleted successfully")
	helpers.LogSuccess("DeleteEventHandler", "event deleted successfully", map[string]any{"event_id": eventID})
}

// EventSessionHandler handles POST /payments/event-session/:id
func (h *EventsHandler) EventSessionHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "EventSessionHandler")
	if !ok {
		return
	}
	eventID := c.Param("id")

	session, err := h.service.CreateEventSession(c.Request.Context(), caller, eventID)
	if err != nil {
		helpers.HandleServiceError(c, "EventSessionHandler", err, map[string]any{"event_id": eventID, "caller": caller.Identity})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "checkout session created")
	helpers.LogSuccess("EventSessionHandler", "checkout session created", map[string]any{
		"session_id": session.ID,
		"event_id":   eventID,
	})
}

// VerifyEventPaymentHandler handles POST /payments/event-verify
func (h *EventsHandler) VerifyEventPaymentHandler(c *gin.Context) {
	caller, ok := helpers.RequireCaller(c, "VerifyEventPaymentHandler")
	if !ok {
		return
	}
	var req helpers.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyEventPaymentHandler", err)
		return
	}

	attendance, err := h.service.VerifyEventPayment(c.Request.Context(), caller, req.SessionID)
	if err != nil {
		helpers.HandleServiceError(c, "VerifyEventPaymentHandler", err, map[string]any{
			"session_id": req.SessionID,
			"caller":     caller.Identity,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attendance, "payment verified")
	helpers.LogSuccess("VerifyEventPaymentHandler", "payment verified", map[string]any{
		"event_id":   attendance.Event.ID,
		"session_id": req.SessionID,
	})
}
