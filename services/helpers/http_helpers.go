package helpers

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the authenticated models.Caller
const CallerKey = "caller"

// CallerFromContext returns the caller stored by the auth middleware
func CallerFromContext(c *gin.Context) (models.Caller, bool) {
	v, ok := c.Get(CallerKey)
	if !ok {
		return models.Caller{}, false
	}
	caller, ok := v.(models.Caller)
	return caller, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err, writes the error envelope and logs the failure
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Client-facing details attached with marketerrors.WithDetail replace the message.
func MapErrorToHTTP(err error) (int, string) {
	status, message := classify(err)
	if detail := marketerrors.Detail(err); detail != "" && status < http.StatusInternalServerError {
		message = detail
	}
	return status, message
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrPrincipalNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for listing"
	case errors.Is(err, marketerrors.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, marketerrors.ErrComplaintNotFound):
		return http.StatusNotFound, "complaint not found"

	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, marketerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, marketerrors.ErrSelfBid):
		return http.StatusBadRequest, "cannot bid on own item"
	case errors.Is(err, marketerrors.ErrListingNotOpen):
		return http.StatusBadRequest, "listing is not open for bidding"
	case errors.Is(err, marketerrors.ErrBidConflict):
		return http.StatusBadRequest, "failed to update bid"
	case errors.Is(err, marketerrors.ErrAuctionRunning):
		return http.StatusBadRequest, "auction has not ended yet"
	case errors.Is(err, marketerrors.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid status"
	case errors.Is(err, marketerrors.ErrDuplicatePrincipal):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, marketerrors.ErrEmptyCart):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, marketerrors.ErrPaymentIncomplete):
		return http.StatusBadRequest, "payment not completed"
	case errors.Is(err, marketerrors.ErrAlreadyRegistered):
		return http.StatusBadRequest, "you are already registered for this event"
	case errors.Is(err, marketerrors.ErrNotRegistered):
		return http.StatusBadRequest, "you are not registered for this event"

	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusConflict, "listing status cannot change"
	case errors.Is(err, marketerrors.ErrOutOfStock):
		return http.StatusConflict, "product out of stock"
	case errors.Is(err, marketerrors.ErrDuplicateOrder):
		return http.StatusConflict, "order already recorded"

	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, marketerrors.ErrPrincipalBlocked):
		return http.StatusForbidden, "account is blocked"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"

	case errors.Is(err, marketerrors.ErrPaymentsDisabled):
		return http.StatusServiceUnavailable, "payments are not available"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// RequireCaller returns the authenticated caller or writes a 401
func RequireCaller(c *gin.Context, handlerName string) (models.Caller, bool) {
	caller, ok := CallerFromContext(c)
	if !ok {
		HandleServiceError(c, handlerName, marketerrors.ErrUnauthorized, nil)
	}
	return caller, ok
}

// ImageStore picks where an uploaded image is written and served from
type ImageStore interface {
	Target(fh *multipart.FileHeader) (dst, url string, err error)
}

// SavedImage is an uploaded file already written to the image store
type SavedImage struct {
	URL  string
	path string
}

// Discard deletes the file; handlers call it when the request that carried
// the upload is rejected after the write.
func (img SavedImage) Discard() {
	if img.path == "" {
		return
	}
	if err := os.Remove(img.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		utils.Warn("failed to discard uploaded image", map[string]any{"path": img.path, "error": err.Error()})
	}
}

// SaveImage stores the optional image in form field.
// Requests without a file, or that are not multipart, yield a zero SavedImage.
func SaveImage(c *gin.Context, store ImageStore, field string) (SavedImage, error) {
	if store == nil {
		return SavedImage{}, nil
	}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return SavedImage{}, nil
	}
	if err != nil {
		return SavedImage{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "could not read uploaded image")
	}

	dst, url, err := store.Target(fh)
	if err != nil {
		return SavedImage{}, err
	}
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		_ = os.Remove(dst)
		return SavedImage{}, fmt.Errorf("save uploaded image: %w", err)
	}
	return SavedImage{URL: url, path: dst}, nil
}
