package reminder

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
	g := api.Group("/reminders")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type createRequest struct {
	UserID       string   `json:"userId"`
	Title        string   `json:"title" validate:"required"`
	Datetime     string   `json:"datetime" validate:"required"`
	Frequency    string   `json:"frequency" validate:"omitempty,oneof=once daily weekly custom"`
	SelectedDays []string `json:"selectedDays" validate:"dive,weekday"`
	IsActive     *bool    `json:"isActive"`
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
	at, err := ParseDatetime(req.Datetime)
	if err != nil {
		return validation.ToHTTP(err, "create reminder")
	}

	r := &Reminder{
		UserID:       owner,
		Title:        req.Title,
		Datetime:     at,
		Frequency:    req.Frequency,
		SelectedDays: req.SelectedDays,
		IsActive:     true,
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	if err := h.svc.Create(c.Request().Context(), r); err != nil {
		return validation.ToHTTP(err, "create reminder")
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list reminders")
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
			return echo.NewHTTPError(http.StatusNotFound, "reminder not found")
		}
		return validation.ToHTTP(err, "delete reminder")
	}
	return c.NoContent(http.StatusNoContent)
}
