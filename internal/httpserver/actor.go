package httpserver

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/domain"
	middleware "github.com/Skotchmaster/marketplace/pkg/middleware/auth"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

// actorFrom reads the identity the auth middleware attached to c.
func actorFrom(c echo.Context) domain.Actor {
	sub, _ := c.Get(middleware.UserIDKey).(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return domain.Anonymous()
	}
	if role, _ := c.Get(middleware.RoleKey).(string); role == tokens.RoleAdmin {
		return domain.Admin(id)
	}
	return domain.Producer(id)
}

func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
