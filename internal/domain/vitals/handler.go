package vitals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	g := api.Group("/vitals")
	g.POST("", h.Log)
	g.GET("/:userId", h.Summary, auth.RequireSelf("userId"))
	g.GET("/:userId/logs", h.ListByUser, auth.RequireSelf("userId"))
	g.DELETE("/:id", h.Delete)
}

type logRequest struct {
	UserID         string      `json:"userId"`
	Category       string      `json:"category" validate:"required,vitalcategory"`
	Value          string      `json:"value" validate:"required,max=64"`
	Unit           string      `json:"unit" validate:"max=32"`
	Source         string      `json:"source" validate:"omitempty,oneof=manual report"`
	LinkedReportID string      `json:"linkedReportId" validate:"omitempty,uuid"`
	Note           string      `json:"note"`
	RecordedAt     string      `json:"recordedAt"`
	Height         json.Number `json:"height"`
}

type logResponse struct {
	*VitalLog
	BMI *BMIAssessment `json:"bmi,omitempty"`
}

var recordedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseRecordedAt(s string) (time.Time, bool) {
	for _, layout := range recordedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func (h *Handler) Log(c echo.Context) error {
	var req logRequest
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

	l := &VitalLog{
		UserID:   owner,
		Category: req.Category,
		Value:    req.Value,
		Unit:     req.Unit,
		Source:   req.Source,
		Note:     req.Note,
	}
	if req.LinkedReportID != "" {
		id, err := uuid.Parse(req.LinkedReportID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "linkedReportId is invalid")
		}
		l.LinkedReportID = &id
	}
	if req.RecordedAt != "" {
		at, ok := parseRecordedAt(req.RecordedAt)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "recordedAt is not a valid date")
		}
		l.RecordedAt = at
	}
	var height float64
	if req.Height != "" {
		if height, err = req.Height.Float64(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "height must be a number")
		}
	}

	bmi, err := h.svc.Log(c.Request().Context(), l, height)
	if err != nil {
		return validation.ToHTTP(err, "log vital")
	}
	return c.JSON(http.StatusCreated, logResponse{VitalLog: l, BMI: bmi})
}

func (h *Handler) Summary(c echo.Context) error {
	sum, err := h.svc.Summarize(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "summarize vitals")
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return validation.ToHTTP(err, "list vitals")
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
			return echo.NewHTTPError(http.StatusNotFound, "vital log not found")
		}
		return validation.ToHTTP(err, "delete vital")
	}
	return c.NoContent(http.StatusNoContent)
}
