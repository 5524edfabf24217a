package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	bidding "artisan-market/internal/biddingService"
	catalog "artisan-market/internal/catalogService"
	complaints "artisan-market/internal/complaintService"
	events "artisan-market/internal/eventService"
	identity "artisan-market/internal/identityService"
	model "artisan-market/internal/models"
	orders "artisan-market/internal/orderService"
	"artisan-market/internal/payment"
	"artisan-market/internal/repository"
	"artisan-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type testApp struct {
	router  *gin.Engine
	repo    *repository.MemoryRepo
	clock   *clock
	gateway *payment.MockGateway
}

// SetupTestApp wires every service over one in-memory repository and a mocked payment gateway.
func SetupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	clk := &clock{t: time.Now().UTC().Truncate(time.Second)}
	gateway := payment.NewMockGateway(gomock.NewController(t))

	identitySvc := identity.NewService(repo, identity.JWT{Secret: []byte("integration"), TokenTTL: time.Hour}).
		WithHashCost(bcrypt.MinCost)
	directory := identity.NewDirectory(repo, nil)

	router := server.SetupRouter(server.Dependencies{
		Identity:   identitySvc,
		Bidding:    bidding.NewBiddingService(repo, directory, bidding.WithClock(clk.Now)),
		Catalog:    catalog.NewCatalogService(repo),
		Orders:     orders.NewOrderService(repo, repo, gateway),
		Events:     events.NewEventService(repo, gateway).WithClock(clk.Now),
		Complaints: complaints.NewComplaintService(repo, directory),
	})
	return &testApp{router: router, repo: repo, clock: clk, gateway: gateway}
}

// ExecuteRequestAndParse executes an HTTP request on the app router, optionally authenticated,
// and parses the JSON envelope
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return resp, w
}

type account struct {
	Token    string
	Identity string
}

// RegisterAndLogin creates a principal of kind and returns its session
func (a *testApp) RegisterAndLogin(t *testing.T, kind model.PrincipalKind, email, first string) account {
	t.Helper()

	_, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/"+string(kind)+"/register", "", map[string]string{
		"email":      email,
		"password":   "secret123",
		"first_name": first,
		"last_name":  "Tester",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/"+string(kind)+"/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := resp["data"].(map[string]any)
	return account{Token: data["token"].(string), Identity: data["identity"].(string)}
}

// CreateListing submits a listing through path and returns its id
func (a *testApp) CreateListing(t *testing.T, path, token string, base, inc float64) string {
	t.Helper()

	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, path, token, map[string]any{
		"title":         "Walnut bowl",
		"description":   "Hand turned",
		"category":      "woodwork",
		"base_amount":   base,
		"min_increment": inc,
		"last_date":     a.clock.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp["data"].(map[string]any)["id"].(string)
}
