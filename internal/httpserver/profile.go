package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
	"github.com/Skotchmaster/marketplace/internal/util"
	"github.com/Skotchmaster/marketplace/pkg/logging"
)

type ProfileHTTP struct {
	Svc *service.ProfileService
}

func (h *ProfileHTTP) GetProducers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_producers")

	page := util.ParsePage(c.QueryParam("page"), c.QueryParam("size"))
	total, items, err := h.Svc.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return fail(l, "get_producers_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, transport.NewProfileResponse, page, total))
}

func (h *ProfileHTTP) GetProducer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_producer")

	id, err := pathID(c)
	if err != nil {
		return badRequest(l, "get_producer_error", "id is not a uuid", err)
	}

	view, err := h.Svc.Detail(ctx, id)
	if err != nil {
		return fail(l, "get_producer_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewProfileDetailResponse(view))
}

func (h *ProfileHTTP) GetMyProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_my_profile")

	view, err := h.Svc.Mine(ctx, actorFrom(c))
	if err != nil {
		return fail(l, "get_my_profile_error", err)
	}
	return c.JSON(http.StatusOK, transport.NewProfileDetailResponse(view))
}

func (h *ProfileHTTP) PatchMyProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.patch_my_profile")

	var req transport.PatchProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "patch_my_profile_error", "invalid body", err)
	}

	view, err := h.Svc.UpdateMine(ctx, actorFrom(c), service.ProfilePatch{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		return fail(l, "patch_my_profile_error", err)
	}

	l.Info("patch_my_profile_success")
	return c.JSON(http.StatusOK, transport.NewProfileDetailResponse(view))
}
