package medicine

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
	g := api.Group("/medicines")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type createRequest struct {
	UserID       string `json:"userId"`
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
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

	m := &Medicine{
		UserID:       owner,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Time:         req.Time,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
	}
	if err := h.svc.Create(c.Request().Context(), m); err != nil {
		return validation.ToHTTP(err, "create medicine")
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list medicines")
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
			return echo.NewHTTPError(http.StatusNotFound, "medicine not found")
		}
		return validation.ToHTTP(err, "delete medicine")
	}
	return c.NoContent(http.StatusNoContent)
}
