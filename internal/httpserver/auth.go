package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
	"github.com/Skotchmaster/marketplace/internal/validation"
	"github.com/Skotchmaster/marketplace/pkg/logging"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "register_error", "invalid body", err)
	}

	profile, err := h.Svc.RegisterProducer(ctx, validation.RegistrationInput{
		Username: req.Username,
		Password: req.Password,
		Profile: validation.ProfileInput{
			Name:    req.Name,
			TaxID:   req.TaxID,
			Phone:   req.Phone,
			City:    req.City,
			Address: req.Address,
		},
	})
	if err != nil {
		return fail(l, "register_error", err)
	}

	l.Info("register_success", "user_id", profile.UserID)
	return c.JSON(http.StatusCreated, transport.NewProfileResponse(*profile))
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_error", "invalid body", err)
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "login_error", err)
	}

	c.SetCookie(tokens.CreateCookie(tokens.AccessCookie, res.AccessToken, "/", res.AccessExp))

	l.Info("login_success")
	return c.JSON(http.StatusOK, transport.LoginResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExp,
		IsAdmin:     res.IsAdmin,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookie, "/"))
	return c.NoContent(http.StatusNoContent)
}
