package profile

import (
	"errors"
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
	users := api.Group("/users")
	users.GET("/:id", h.Get, auth.RequireSelf("id"))
	users.PUT("/:id", h.Update, auth.RequireSelf("id"))

	guardian := api.Group("/guardian")
	guardian.POST("/notify", h.Notify)
	guardian.POST("/verify-email", h.VerifyEmail)
}

type messageResponse struct {
	Message string `json:"message"`
}

type updateRequest struct {
	FirstName     string `json:"firstName" validate:"max=50"`
	LastName      string `json:"lastName" validate:"max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	Age           string `json:"age" validate:"omitempty,numeric,max=3"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"bloodGroup"`
	Address       string `json:"address"`
	Photo         string `json:"photo" validate:"max=2048"`
	GuardianEmail string `json:"guardianEmail" validate:"omitempty,email"`
}

type notifyRequest struct {
	UserID   string `json:"userId"`
	Type     string `json:"type" validate:"required,oneof=Medicine Appointment"`
	ItemName string `json:"itemName" validate:"required"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return validation.ToHTTP(err, "get profile")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.svc.Update(c.Request().Context(), &Profile{
		ID:            c.Param("id"),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Age:           req.Age,
		Gender:        req.Gender,
		BloodGroup:    req.BloodGroup,
		Address:       req.Address,
		Photo:         req.Photo,
		GuardianEmail: req.GuardianEmail,
	})
	if err != nil {
		return validation.ToHTTP(err, "update profile")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Notify(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	userID, err := auth.ResolveOwner(c, req.UserID)
	if err != nil {
		return err
	}

	msg, err := h.svc.NotifyGuardian(c.Request().Context(), userID, req.Type, req.ItemName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return validation.ToHTTP(err, "notify guardian")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) VerifyEmail(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.VerifyGuardian(c.Request().Context(), req.Token); err != nil {
		return validation.ToHTTP(err, "verify guardian")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: MsgGuardianVerified})
}
