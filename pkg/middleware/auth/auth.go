package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

type AuthMiddleware struct {
	JWTSecret []byte
}

func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{JWTSecret: secret}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func unauthorized(msg string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, errorBody{Code: "unauthenticated", Message: msg})
}

// Identify attaches the caller's claims when a token is present and lets
// anonymous requests through. A token that is present but invalid is
// rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := tokenFromRequest(c)
		if raw == "" {
			return next(c)
		}
		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			c.SetCookie(tokens.DeleteCookie(tokens.AccessCookie, "/"))
			return unauthorized("invalid access token")
		}
		setUserContext(c, claims)
		return next(c)
	}
}

// RequireAuth rejects requests without a valid token.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Identify(func(c echo.Context) error {
		if _, ok := c.Get(UserIDKey).(string); !ok {
			return unauthorized("missing access token")
		}
		return next(c)
	})
}

func tokenFromRequest(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(tokens.AccessCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set(UserIDKey, claims.Subject)
	c.Set(RoleKey, claims.Role)
}
