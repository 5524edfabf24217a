package server

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"artisan-market/internal/marketerrors"
	"artisan-market/internal/models"
	"artisan-market/services/helpers"
	"artisan-market/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// Authenticator resolves a bearer token to the caller behind it
type Authenticator interface {
	Authenticate(token string) (models.Caller, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Header(requestIDHeader, requestID)

	c.Next() // process request

	fields := map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if caller, ok := helpers.CallerFromContext(c); ok {
		fields["caller"] = caller.Identity
	}
	utils.Info("HTTP Request", fields)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, marketerrors.ErrUnauthorized, "missing bearer token")
			return
		}
		caller, err := auth.Authenticate(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, err, "invalid or expired token")
			return
		}
		c.Set(helpers.CallerKey, caller)
		c.Next()
	}
}

// OptionalAuth loads the caller when a valid token is present and never rejects
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if caller, err := auth.Authenticate(token); err == nil {
				c.Set(helpers.CallerKey, caller)
			}
		}
		c.Next()
	}
}

// RequireRoles lets through only callers of one of roles. It must run after AuthMiddleware.
func RequireRoles(roles ...models.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.CallerFromContext(c)
		if !ok {
			abort(c, http.StatusUnauthorized, marketerrors.ErrUnauthorized, "missing bearer token")
			return
		}
		if !slices.Contains(roles, caller.Role) {
			abort(c, http.StatusForbidden, marketerrors.ErrForbidden, "access denied for role "+string(caller.Role))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, err error, message string) {
	utils.JSONError(c, status, err, message)
	c.Abort()
	utils.Warn("auth: request rejected", map[string]any{
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	})
}
