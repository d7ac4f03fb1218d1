package timeline

import (
	"net/http"

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
	api.GET("/timeline/:userId", h.Get, auth.RequireSelf("userId"))
}

func (h *Handler) Get(c echo.Context) error {
	events, err := h.svc.Build(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "fetch timeline")
	}
	return c.JSON(http.StatusOK, events)
}
