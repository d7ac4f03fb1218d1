package report

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
	g := api.Group("/reports")
	g.POST("", h.Create)
	g.GET("/:userId", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type createRequest struct {
	UserID     string `json:"userId"`
	Title      string `json:"title" validate:"required"`
	DoctorName string `json:"doctorName" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
	FileURL    string `json:"fileUrl" validate:"omitempty,max=2048"`
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

	r := &Report{
		UserID:     owner,
		Title:      req.Title,
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Type:       req.Type,
		Notes:      req.Notes,
		FileURL:    req.FileURL,
	}
	if err := h.svc.Create(c.Request().Context(), r); err != nil {
		return validation.ToHTTP(err, "create report")
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list reports")
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
			return echo.NewHTTPError(http.StatusNotFound, "report not found")
		}
		return validation.ToHTTP(err, "delete report")
	}
	return c.NoContent(http.StatusNoContent)
}
