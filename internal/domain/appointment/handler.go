package appointment

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
	g := api.Group("/appointments")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type createRequest struct {
	UserID     string `json:"userId"`
	DoctorName string `json:"doctorName" validate:"required"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Location   string `json:"location"`
	Status     string `json:"status" validate:"omitempty,oneof=Upcoming Completed"`
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

	a := &Appointment{
		UserID:     owner,
		DoctorName: req.DoctorName,
		Specialty:  req.Specialty,
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Status:     req.Status,
	}
	if err := h.svc.Create(c.Request().Context(), a); err != nil {
		return validation.ToHTTP(err, "create appointment")
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list appointments")
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
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return validation.ToHTTP(err, "delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}
