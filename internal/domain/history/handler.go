package history

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medcare/medcare/internal/platform/auth"
	"github.com/medcare/medcare/internal/platform/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/history")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var p Payload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	owner, err := auth.ResolveOwner(c, p.UserID)
	if err != nil {
		return err
	}

	r := p.Record()
	r.UserID = owner
	if err := h.svc.Create(c.Request().Context(), r); err != nil {
		return validation.ToHTTP(err, "create history record")
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list history")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.OwnerScope(c)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "history record not found")
		}
		return validation.ToHTTP(err, "delete history record")
	}
	return c.NoContent(http.StatusNoContent)
}
