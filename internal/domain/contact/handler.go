package contact

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
	g := api.Group("/contacts")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type createRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation"`
	Phone    string `json:"phone" validate:"required"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	owner, err := auth.ResolveOwner(c, req.UserID)
	if err != nil {
		return err
	}

	ct := &Contact{
		UserID:   owner,
		Name:     req.Name,
		Relation: req.Relation,
		Phone:    req.Phone,
	}
	if err := h.svc.Create(c.Request().Context(), ct); err != nil {
		return validation.ToHTTP(err, "create contact")
	}
	return c.JSON(http.StatusCreated, ct)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list contacts")
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
			return echo.NewHTTPError(http.StatusNotFound, "contact not found")
		}
		return validation.ToHTTP(err, "delete contact")
	}
	return c.NoContent(http.StatusNoContent)
}
