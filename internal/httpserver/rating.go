package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
	"github.com/Skotchmaster/marketplace/internal/util"
	"github.com/Skotchmaster/marketplace/internal/validation"
	"github.com/Skotchmaster/marketplace/pkg/logging"
)

type RatingHTTP struct {
	Svc *service.RatingService
}

func (h *RatingHTTP) CreateRating(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.create_rating")

	var req transport.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "rating_create_error", "invalid body", err)
	}

	rating, err := h.Svc.Submit(ctx, validation.RatingInput{
		OrderID:     req.OrderID,
		Score:       req.Score,
		Comment:     req.Comment,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		return fail(l, "rating_create_error", err)
	}

	l.Info("create_rating_success", "order_id", rating.OrderID)
	return c.JSON(http.StatusCreated, transport.NewRatingResponse(*rating))
}

func (h *RatingHTTP) GetMyRatings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "rating.get_my_ratings")

	page := util.ParsePage(c.QueryParam("page"), c.QueryParam("size"))
	total, items, err := h.Svc.ListForProducer(ctx, actorFrom(c), page.Offset, page.Limit)
	if err != nil {
		return fail(l, "get_my_ratings_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, transport.NewRatingResponse, page, total))
}
