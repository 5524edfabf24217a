package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identity "artisan-market/internal/identityService"
	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
	"artisan-market/services/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/buyer/register", handler.RegisterHandler(model.KindBuyer))
	admin := model.Caller{Identity: "root@x.io", Role: model.KindAdmin}
	router.POST("/admin/register", func(c *gin.Context) { c.Set(helpers.CallerKey, admin) }, handler.RegisterHandler(model.KindAdmin))

	tests := []struct {
		name           string
		path           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "buyer_registered",
			path: "/buyer/register",
			body: `{"email":"bea@x.io","password":"secret1","first_name":"Bea"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), model.KindBuyer, identity.RegisterInput{Email: "bea@x.io", Password: "secret1", FirstName: "Bea"}, nil).
					Return(model.Principal{ID: "p1", Kind: model.KindBuyer, Email: "bea@x.io", PasswordHash: "hash"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "registered successfully",
		},
		{
			name: "admin_by_admin_passes_caller",
			path: "/admin/register",
			body: `{"email":"ops@x.io","password":"secret1","first_name":"Ops"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), model.KindAdmin, gomock.Any(), &admin).
					Return(model.Principal{ID: "p2", Kind: model.KindAdmin, Email: "ops@x.io"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "registered successfully",
		},
		{
			name:           "missing_password",
			path:           "/buyer/register",
			body:           `{"email":"bea@x.io"}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_email",
			path: "/buyer/register",
			body: `{"email":"dup@x.io","password":"secret1","first_name":"Dup"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), model.KindBuyer, gomock.Any(), nil).
					Return(model.Principal{}, fmt.Errorf("service: %w", marketerrors.ErrDuplicatePrincipal))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "email already registered",
		},
		{
			name: "weak_password",
			path: "/buyer/register",
			body: `{"email":"weak@x.io","password":"123","first_name":"Weak"}`,
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), model.KindBuyer, gomock.Any(), nil).
					Return(model.Principal{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "password must be 6 to 72 characters"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "password must be 6 to 72 characters",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, tc.path, bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
			require.NotContains(t, w.Body.String(), "password_hash")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/seller/login", handler.LoginHandler(model.KindSeller))

	expires := time.Now().Add(time.Hour).UTC()

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			body: `{"email":"sam@x.io","password":"secret1"}`,
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), model.KindSeller, "sam@x.io", "secret1").
					Return(identity.Session{Token: "tok", ExpiresAt: expires, Role: "seller", Identity: "sam@x.io"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "login successful",
		},
		{
			name: "bad_credentials",
			body: `{"email":"sam@x.io","password":"wrong"}`,
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), model.KindSeller, "sam@x.io", "wrong").
					Return(identity.Session{}, marketerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid email or password",
		},
		{
			name: "blocked",
			body: `{"email":"banned@x.io","password":"secret1"}`,
			mockSetup: func() {
				mockService.EXPECT().Login(gomock.Any(), model.KindSeller, "banned@x.io", "secret1").
					Return(identity.Session{}, marketerrors.ErrPrincipalBlocked)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "account is blocked",
		},
		{
			name:           "invalid_json",
			body:           `{`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/seller/login", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusOK {
				require.Equal(t, "tok", resp["data"].(map[string]any)["token"])
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	caller := model.Caller{Identity: "sam@x.io", Role: model.KindSeller}
	router.PUT("/profile", func(c *gin.Context) { c.Set(helpers.CallerKey, caller) }, handler.UpdateProfileHandler)
	router.PUT("/anonymous/profile", handler.UpdateProfileHandler)

	tests := []struct {
		name           string
		path           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "partial_update",
			path: "/profile",
			body: `{"last_name":"Potter"}`,
			mockSetup: func() {
				mockService.EXPECT().UpdateProfile(gomock.Any(), caller, gomock.Any()).
					DoAndReturn(func(_ any, _ model.Caller, u model.ProfileUpdate) (model.Principal, error) {
						require.Nil(t, u.FirstName)
						require.Nil(t, u.Mobile)
						require.Equal(t, "Potter", *u.LastName)
						return model.Principal{ID: "s1", Kind: model.KindSeller, Email: "sam@x.io", LastName: "Potter"}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "profile updated successfully",
		},
		{
			name: "empty_first_name",
			path: "/profile",
			body: `{"first_name":""}`,
			mockSetup: func() {
				mockService.EXPECT().UpdateProfile(gomock.Any(), caller, gomock.Any()).
					Return(model.Principal{}, marketerrors.WithDetail(marketerrors.ErrInvalidInput, "first_name cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "first_name cannot be empty",
		},
		{
			name:           "invalid_json",
			path:           "/profile",
			body:           `{"first_name":`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "no_caller",
			path:           "/anonymous/profile",
			body:           `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthorized",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, tc.path, bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusOK {
				require.Equal(t, "Potter", resp["data"].(map[string]any)["last_name"])
				require.NotContains(t, resp["data"], "password_hash")
			}
		})
	}
}
