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

type ProductHTTP struct {
	Svc *service.CatalogService
}

func productInput(req transport.CreateProductRequest) validation.ProductInput {
	return validation.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		Status:   domain.ProductStatus(req.Status),
		Stock:    req.Stock,
		Price:    req.Price,
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	page := util.ParsePage(c.QueryParam("page"), c.QueryParam("size"))
	total, items, err := h.Svc.ListProducts(ctx, actorFrom(c), page.Offset, page.Limit)
	if err != nil {
		return fail(l, "get_products_error", err)
	}

	l.Info("get_products_success")
	return c.JSON(http.StatusOK, transport.NewPage(items, transport.NewProductResponse, page, total))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "get_product_error", "id is not a uuid", err)
	}

	prod, err := h.Svc.GetProduct(ctx, actorFrom(c), id)
	if err != nil {
		return fail(l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewProductResponse(*prod))
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "product_create_error", "invalid body", err)
	}

	prod, err := h.Svc.CreateProduct(ctx, actorFrom(c), productInput(req))
	if err != nil {
		return fail(l, "product_create_error", err)
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, transport.NewProductResponse(*prod))
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_product")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "product_patch_error", "id is not a uuid", err)
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "product_patch_error", "invalid body", err)
	}

	patch := service.ProductPatch{
		Name:     req.Name,
		Category: req.Category,
		Stock:    req.Stock,
		Price:    req.Price,
	}
	if req.Status != nil {
		st := domain.ProductStatus(*req.Status)
		patch.Status = &st
	}

	prod, err := h.Svc.PatchProduct(ctx, actorFrom(c), id, patch)
	if err != nil {
		return fail(l, "product_patch_error", err)
	}

	l.Info("patch_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, transport.NewProductResponse(*prod))
}

func (h *ProductHTTP) PutProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.put_product")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "product_put_error", "id is not a uuid", err)
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "product_put_error", "invalid body", err)
	}

	prod, err := h.Svc.ReplaceProduct(ctx, actorFrom(c), id, productInput(req))
	if err != nil {
		return fail(l, "product_put_error", err)
	}

	l.Info("put_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, transport.NewProductResponse(*prod))
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "product_delete_error", "id is not a uuid", err)
	}

	if err := h.Svc.DeleteProduct(ctx, actorFrom(c), id); err != nil {
		return fail(l, "product_delete_error", err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

// GetProducerProducts is the public, active-only catalog of one producer.
func (h *ProductHTTP) GetProducerProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_producer_products")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "get_producer_products_error", "id is not a uuid", err)
	}

	page := util.ParsePage(c.QueryParam("page"), c.QueryParam("size"))
	total, items, err := h.Svc.ProducerProducts(ctx, id, page.Offset, page.Limit)
	if err != nil {
		return fail(l, "get_producer_products_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, transport.NewProductResponse, page, total))
}
