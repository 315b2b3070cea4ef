package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under event and turns it into the JSON error body. Store
// details never reach the client.
func fail(l *slog.Logger, event string, err error) error {
	status := statusOf(err)
	body := transport.ErrorResponse{Code: domain.CodeOf(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", "internal error", "error", err)
		body.Message = "internal error"
	} else {
		l.Warn(event, "status", status, "reason", body.Code, "error", err)
	}
	return echo.NewHTTPError(status, body)
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, transport.ErrorResponse{Code: "validation_error", Message: reason})
}
