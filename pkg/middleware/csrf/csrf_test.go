package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, cfg Config, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Use(Middleware(cfg))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/", ok)
	e.POST("/", ok)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetIssuesToken(t *testing.T) {
	rec := serve(t, Config{}, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("X-CSRF-Token")
	assert.NotEmpty(t, token)

	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "XSRF-TOKEN" {
			found = true
			assert.Equal(t, token, ck.Value)
		}
	}
	assert.True(t, found)
}

func TestAnonymousAndBearerPostsPass(t *testing.T) {
	rec := serve(t, Config{}, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer x")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "x"})
	assert.Equal(t, http.StatusOK, serve(t, Config{}, req).Code)
}

func TestCookieSessionNeedsMatchingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "session"})
	req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok"})
	assert.Equal(t, http.StatusForbidden, serve(t, Config{}, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "session"})
	req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok"})
	req.Header.Set("X-CSRF-Token", "tok")
	assert.Equal(t, http.StatusOK, serve(t, Config{}, req).Code)
}

func TestSameOriginEnforced(t *testing.T) {
	cfg := Config{EnforceSameOrigin: true}

	req := httptest.NewRequest(http.MethodPost, "http://shop.test/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "session"})
	req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok"})
	req.Header.Set("X-CSRF-Token", "tok")
	req.Header.Set("Origin", "http://evil.test")
	assert.Equal(t, http.StatusForbidden, serve(t, cfg, req).Code)

	req.Header.Set("Origin", "http://shop.test")
	assert.Equal(t, http.StatusOK, serve(t, cfg, req).Code)
}
