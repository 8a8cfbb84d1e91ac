package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/service"
	"github.com/MKhiriev/stock-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn             func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn       func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
	ensureDefaultUserFn func(ctx context.Context) error
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureDefaultUser(ctx context.Context) error {
	return m.ensureDefaultUserFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// decodeBody decodes a JSON response body into a map for assertions on the
// exact wire shape.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "12345", password)
			return models.User{UserID: 1, Username: "admin"}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return stubToken("signed-jwt"), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"12345"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login realizado com sucesso", body["mensagem"])
	assert.Equal(t, "signed-jwt", body["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Usuário ou senha inválidos", body["erro"])
}

// A malformed body must produce the same 401 as bad credentials: the login
// endpoint never reveals which part of the request was wrong.
func TestLogin_MalformedBody(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			assert.Empty(t, username)
			assert.Empty(t, password)
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Usuário ou senha inválidos", body["erro"])
}

func TestLogin_EmptyBody(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{UserID: 1, Username: "admin"}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"12345"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Erro interno do servidor", body["erro"])
}
