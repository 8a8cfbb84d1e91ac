package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/service"
	"github.com/MKhiriev/stock-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) Login(_ context.Context, username, _ string) (models.User, error) {
	return models.User{UserID: 1, Username: username}, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{SignedString: "stub-token"}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}
func (m *mockAuthSvc) EnsureDefaultUser(_ context.Context) error {
	return nil
}

// ---- Mock: ItemService ----

type mockItemSvc struct{}

func (m *mockItemSvc) CreateItem(_ context.Context, _ models.ItemRequest) (models.Item, error) {
	return models.Item{ID: 1}, nil
}
func (m *mockItemSvc) GetItems(_ context.Context, _ string) ([]models.Item, error) {
	return nil, nil
}
func (m *mockItemSvc) GetItemByID(_ context.Context, id int64) (models.Item, error) {
	return models.Item{ID: id}, nil
}
func (m *mockItemSvc) UpdateItem(_ context.Context, _ int64, _ models.ItemRequest) error {
	return nil
}
func (m *mockItemSvc) DeleteItem(_ context.Context, _ int64) error {
	return nil
}

// ---- Mock: LotService ----

type mockLotSvc struct{}

func (m *mockLotSvc) CreateLot(_ context.Context, _ models.LotRequest) (models.Lot, error) {
	return models.Lot{ID: 1}, nil
}
func (m *mockLotSvc) GetLots(_ context.Context) ([]models.Lot, error) {
	return nil, nil
}
func (m *mockLotSvc) GetLotByID(_ context.Context, id int64) (models.Lot, error) {
	return models.Lot{ID: id}, nil
}
func (m *mockLotSvc) UpdateLot(_ context.Context, _ int64, _ models.LotRequest) error {
	return nil
}
func (m *mockLotSvc) DeleteLot(_ context.Context, _ int64) error {
	return nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthSvc{},
			ItemService: &mockItemSvc{},
			LotService:  &mockLotSvc{},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// protectedRoutes lists every route behind the auth middleware.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/api/items"},
	{http.MethodGet, "/api/items"},
	{http.MethodGet, "/api/items/1"},
	{http.MethodPut, "/api/items/1"},
	{http.MethodDelete, "/api/items/1"},
	{http.MethodPost, "/api/lots"},
	{http.MethodGet, "/api/lots"},
	{http.MethodGet, "/api/lots/1"},
	{http.MethodPut, "/api/lots/1"},
	{http.MethodDelete, "/api/lots/1"},
}

// ---- Public routes: reachable without auth ----

func TestInit_LoginRouteIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEqual(t, http.StatusNotFound, rr.Code)
	assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
		"login must not require authentication")
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"route must require auth: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: reachable with token ----

func TestInit_ProtectedRoutes_ReachableWithAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code,
				"method not allowed: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token must pass auth: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Unknown routes ----

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
