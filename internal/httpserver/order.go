package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
	"github.com/Skotchmaster/marketplace/internal/util"
	"github.com/Skotchmaster/marketplace/internal/validation"
	"github.com/Skotchmaster/marketplace/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "order_create_error", "invalid body", err)
	}

	lines := make([]validation.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, validation.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	view, err := h.Svc.Create(ctx, validation.OrderInput{
		ProducerID:  req.ProducerID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		TotalPrice:  req.TotalPrice,
		Items:       lines,
	})
	if err != nil {
		return fail(l, "order_create_error", err)
	}

	l.Info("create_order_success", "order_id", view.Order.ID)
	return c.JSON(http.StatusCreated, transport.NewOrderResponse(*view))
}

// GetOrders lists by client_phone when given, otherwise the caller's orders.
func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	page := util.ParsePage(c.QueryParam("page"), c.QueryParam("size"))
	total, views, err := h.Svc.List(ctx, actorFrom(c), c.QueryParam("client_phone"), page.Offset, page.Limit)
	if err != nil {
		return fail(l, "get_orders_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(views, transport.NewOrderResponse, page, total))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "get_order_error", "id is not a uuid", err)
	}

	view, err := h.Svc.Get(ctx, actorFrom(c), id)
	if err != nil {
		return fail(l, "get_order_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewOrderResponse(*view))
}

func (h *OrderHTTP) PatchOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.patch_status")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "order_status_error", "id is not a uuid", err)
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "order_status_error", "invalid body", err)
	}

	view, err := h.Svc.UpdateStatus(ctx, actorFrom(c), id, domain.OrderStatus(req.Status))
	if err != nil {
		return fail(l, "order_status_error", err)
	}

	l.Info("order_status_success", "order_id", id, "status", req.Status)
	return c.JSON(http.StatusOK, transport.NewOrderResponse(*view))
}
