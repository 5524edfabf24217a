package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	bidding "artisan-market/internal/biddingService"
	"artisan-market/internal/marketerrors"
	model "artisan-market/internal/models"
	"artisan-market/services/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var admin = model.Caller{Identity: "root@x.io", Role: model.KindAdmin}

type mocks struct {
	listings   *MockListingModerator
	principals *MockPrincipalManager
	products   *MockProductCounter
	orders     *MockOrderCounter
	events     *MockEventCounter
}

func setup(t *testing.T) (*gin.Engine, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		listings:   NewMockListingModerator(ctrl),
		principals: NewMockPrincipalManager(ctrl),
		products:   NewMockProductCounter(ctrl),
		orders:     NewMockOrderCounter(ctrl),
		events:     NewMockEventCounter(ctrl),
	}
	handler := NewAdminHandler(m.listings, m.principals, m.products, m.orders, m.events)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	g := router.Group("/admin", func(c *gin.Context) { c.Set(helpers.CallerKey, admin) })
	g.GET("/bids", handler.ListListingsHandler)
	g.PUT("/bids/:id/status", handler.SetStatusHandler)
	g.PUT("/bid-requests/:id/approve", handler.ModerateHandler(model.StatusApproved))
	g.PUT("/bid-requests/:id/reject", handler.ModerateHandler(model.StatusRejected))
	g.GET("/dashboard/stats", handler.DashboardStatsHandler)
	g.GET("/principals/:kind", handler.ListPrincipalsHandler)
	g.PUT("/principals/:kind/:id/block", handler.BlockHandler(true))
	g.PUT("/principals/:kind/:id/unblock", handler.BlockHandler(false))
	return router, m
}

func do(router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestListListingsHandler(t *testing.T) {
	router, m := setup(t)

	m.listings.EXPECT().AllListings(gomock.Any(), model.ListingStatus("")).
		Return([]bidding.ListingView{{Listing: model.Listing{ID: "l1"}, CreatorName: "Sam Seller"}}, nil)
	w, resp := do(router, http.MethodGet, "/admin/bids", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Sam Seller", resp["data"].([]any)[0].(map[string]any)["creator_name"])

	m.listings.EXPECT().AllListings(gomock.Any(), model.StatusPending).Return([]bidding.ListingView{}, nil)
	w, _ = do(router, http.MethodGet, "/admin/bids?status=pending", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = do(router, http.MethodGet, "/admin/bids?status=archived", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "status must be pending, approved or rejected", resp["message"])
}

func TestModerationHandlers(t *testing.T) {
	router, m := setup(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "approve",
			method: http.MethodPut,
			path:   "/admin/bid-requests/l1/approve",
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "l1", model.StatusApproved, admin).
					Return(model.Listing{ID: "l1", Status: model.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing approved",
		},
		{
			name:   "reject",
			method: http.MethodPut,
			path:   "/admin/bid-requests/l2/reject",
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "l2", model.StatusRejected, admin).
					Return(model.Listing{ID: "l2", Status: model.StatusRejected}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing rejected",
		},
		{
			name:   "flip_refused",
			method: http.MethodPut,
			path:   "/admin/bid-requests/l2/approve",
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "l2", model.StatusApproved, admin).
					Return(model.Listing{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidTransition))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing status cannot change",
		},
		{
			name:   "status_body",
			method: http.MethodPut,
			path:   "/admin/bids/l3/status",
			body:   `{"status":"approved"}`,
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "l3", model.StatusApproved, admin).
					Return(model.Listing{ID: "l3", Status: model.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing approved",
		},
		{
			name:   "status_body_invalid",
			method: http.MethodPut,
			path:   "/admin/bids/l3/status",
			body:   `{"status":"pending"}`,
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "l3", model.StatusPending, admin).
					Return(model.Listing{}, marketerrors.WithDetail(marketerrors.ErrInvalidStatus, "status must be approved or rejected"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "status must be approved or rejected",
		},
		{
			name:           "status_body_missing",
			method:         http.MethodPut,
			path:           "/admin/bids/l3/status",
			body:           `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "not_found",
			method: http.MethodPut,
			path:   "/admin/bid-requests/ghost/approve",
			mockSetup: func() {
				m.listings.EXPECT().SetStatus(gomock.Any(), "ghost", model.StatusApproved, admin).
					Return(model.Listing{}, marketerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w, resp := do(router, tc.method, tc.path, tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestDashboardStatsHandler(t *testing.T) {
	router, m := setup(t)

	m.principals.EXPECT().CountPrincipals(gomock.Any()).Return(map[model.PrincipalKind]int64{model.KindBuyer: 3, model.KindSeller: 2}, nil)
	m.products.EXPECT().CountProducts(gomock.Any()).Return(int64(7), nil)
	m.orders.EXPECT().CountOrders(gomock.Any()).Return(int64(4), nil)
	m.listings.EXPECT().ListingStats(gomock.Any()).Return(bidding.ListingStats{Total: 9, Active: 5, Pending: 2}, nil)
	m.events.EXPECT().CountEvents(gomock.Any()).Return(int64(6), nil)

	w, resp := do(router, http.MethodGet, "/admin/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, 7.0, data["products"])
	require.Equal(t, 4.0, data["orders"])
	require.Equal(t, 3.0, data["principals"].(map[string]any)["buyer"])
	require.Equal(t, 2.0, data["listings"].(map[string]any)["pending"])
	require.Equal(t, 6.0, data["events"])

	m.principals.EXPECT().CountPrincipals(gomock.Any()).Return(nil, errors.New("db down"))
	w, _ = do(router, http.MethodGet, "/admin/dashboard/stats", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPrincipalHandlers(t *testing.T) {
	router, m := setup(t)

	m.principals.EXPECT().ListPrincipals(gomock.Any(), model.KindSeller).Return([]model.Principal{{ID: "s1", Email: "s@x.io"}}, nil)
	w, resp := do(router, http.MethodGet, "/admin/principals/seller", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1)

	w, _ = do(router, http.MethodGet, "/admin/principals/wizard", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.principals.EXPECT().SetBlocked(gomock.Any(), model.KindBuyer, "b1", true).Return(nil)
	w, resp = do(router, http.MethodPut, "/admin/principals/buyer/b1/block", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "account blocked", resp["message"])

	m.principals.EXPECT().SetBlocked(gomock.Any(), model.KindBuyer, "b1", false).Return(nil)
	w, resp = do(router, http.MethodPut, "/admin/principals/buyer/b1/unblock", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "account unblocked", resp["message"])

	m.principals.EXPECT().SetBlocked(gomock.Any(), model.KindAdmin, "a1", true).Return(marketerrors.ErrForbidden)
	w, _ = do(router, http.MethodPut, "/admin/principals/admin/a1/block", "")
	require.Equal(t, http.StatusForbidden, w.Code)

	m.principals.EXPECT().SetBlocked(gomock.Any(), model.KindBuyer, "ghost", true).Return(marketerrors.ErrPrincipalNotFound)
	w, _ = do(router, http.MethodPut, "/admin/principals/buyer/ghost/block", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
