package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

var secret = []byte("mw-secret")

func run(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return c, called, err
}

func token(t *testing.T, role string, exp time.Time) (string, string) {
	t.Helper()
	id := uuid.NewString()
	tok, err := tokens.NewAccessToken(secret, id, role, exp)
	require.NoError(t, err)
	return id, tok
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he.Code
}

func TestIdentify_AnonymousPassesThrough(t *testing.T) {
	m := NewAuthMiddleware(secret)
	c, called, err := run(t, m.Identify, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, c.Get(UserIDKey))
}

func TestIdentify_BearerToken(t *testing.T) {
	m := NewAuthMiddleware(secret)
	id, tok := token(t, tokens.RoleProducer, time.Now().Add(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	c, called, err := run(t, m.Identify, req)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, id, c.Get(UserIDKey))
	assert.Equal(t, tokens.RoleProducer, c.Get(RoleKey))
}

func TestIdentify_Cookie(t *testing.T) {
	m := NewAuthMiddleware(secret)
	id, tok := token(t, tokens.RoleAdmin, time.Now().Add(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: tokens.AccessCookie, Value: tok})
	c, _, err := run(t, m.Identify, req)

	require.NoError(t, err)
	assert.Equal(t, id, c.Get(UserIDKey))
	assert.Equal(t, tokens.RoleAdmin, c.Get(RoleKey))
}

func TestIdentify_InvalidTokenRejected(t *testing.T) {
	m := NewAuthMiddleware(secret)
	_, tok := token(t, tokens.RoleProducer, time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	_, called, err := run(t, m.Identify, req)

	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRequireAuth_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(secret)
	_, called, err := run(t, m.RequireAuth, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(secret)
	_, tok := token(t, tokens.RoleProducer, time.Now().Add(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	_, called, err := run(t, m.RequireAuth, req)

	require.NoError(t, err)
	assert.True(t, called)
}
