package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/marketplace/pkg/middleware/auth"
	"github.com/Skotchmaster/marketplace/pkg/middleware/ratelimit"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	ProfileHandler *ProfileHTTP
	OrderHandler   *OrderHTTP
	RatingHandler  *RatingHTTP
	JWTSecret      []byte
	Limiter        *ratelimit.RateLimiter
	// Ready reports whether the backing store answers.
	Ready func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	authMW := middleware.NewAuthMiddleware(d.JWTSecret)
	limit := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if d.Limiter != nil {
		limit = d.Limiter.Limit
	}

	api := e.Group("/api", authMW.Identify)

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)

	producers := api.Group("/producers")
	producers.GET("", d.ProfileHandler.GetProducers)
	producers.GET("/:id", d.ProfileHandler.GetProducer)
	producers.GET("/:id/products", d.ProductHandler.GetProducerProducts)

	products := api.Group("/products", authMW.RequireAuth)
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.PUT("/:id", d.ProductHandler.PutProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	api.GET("/my-profile", d.ProfileHandler.GetMyProfile, authMW.RequireAuth)
	api.PATCH("/my-profile", d.ProfileHandler.PatchMyProfile, authMW.RequireAuth)
	api.GET("/my-ratings", d.RatingHandler.GetMyRatings, authMW.RequireAuth)

	orders := api.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder, limit)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder, authMW.RequireAuth)
	orders.PATCH("/:id", d.OrderHandler.PatchOrderStatus, authMW.RequireAuth)

	api.POST("/ratings", d.RatingHandler.CreateRating, limit)
}
