package activity

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
	g := api.Group("/activities")
	g.POST("", h.Add)
	g.POST("/add", h.Add)
	g.POST("/complete", h.Complete)
	g.GET("/:userId", h.Overview, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type addRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text" validate:"required,max=500"`
}

type completeRequest struct {
	UserID   string `json:"userId"`
	Title    string `json:"title" validate:"required,max=500"`
	Category string `json:"category" validate:"omitempty,oneof=Exercise 'Mental Health' Diet General"`
	Source   string `json:"source" validate:"omitempty,oneof=User Doctor System"`
	Notes    string `json:"notes"`
}

type messageResponse struct {
	Message  string    `json:"message"`
	Activity *Activity `json:"activity"`
}

func (h *Handler) Overview(c echo.Context) error {
	ov, err := h.svc.Overview(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list activities")
	}
	return c.JSON(http.StatusOK, ov)
}

// Add responds with a one-element array, the shape the activities page reads.
func (h *Handler) Add(c echo.Context) error {
	var req addRequest
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

	a, err := h.svc.AddFromText(c.Request().Context(), owner, req.Text)
	if err != nil {
		return validation.ToHTTP(err, "add activity")
	}
	return c.JSON(http.StatusCreated, []*Activity{a})
}

func (h *Handler) Complete(c echo.Context) error {
	var req completeRequest
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

	a := &Activity{
		UserID:   owner,
		Title:    req.Title,
		Category: req.Category,
		Source:   req.Source,
		Notes:    req.Notes,
	}
	msg, err := h.svc.Complete(c.Request().Context(), a)
	if err != nil {
		return validation.ToHTTP(err, "complete activity")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg, Activity: a})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id, auth.OwnerScope(c)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "activity not found")
		}
		return validation.ToHTTP(err, "delete activity")
	}
	return c.NoContent(http.StatusNoContent)
}
