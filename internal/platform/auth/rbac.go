package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the user has at least one of the specified roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles := RolesFromContext(c.Request().Context())
			for _, required := range roles {
				for _, has := range userRoles {
					if has == required || has == "admin" {
						return next(c)
					}
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// RequireSelf restricts a route to the user named by the given path
// parameter. Admins may act on any user.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CanAccess(c, c.Param(param)) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden, "access to another user's records is not allowed")
		}
	}
}

// CanAccess reports whether the authenticated caller may act on userID's data.
func CanAccess(c echo.Context, userID string) bool {
	ctx := c.Request().Context()
	if HasRole(ctx, "admin") {
		return true
	}
	caller := UserIDFromContext(ctx)
	return caller != "" && caller == userID
}

// ResolveOwner returns the user a new record belongs to. An empty requested id
// means the caller; naming another user requires admin.
func ResolveOwner(c echo.Context, requested string) (string, error) {
	caller := UserIDFromContext(c.Request().Context())
	if requested == "" {
		requested = caller
	}
	if requested == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	if !CanAccess(c, requested) {
		return "", echo.NewHTTPError(http.StatusForbidden, "cannot create records for another user")
	}
	return requested, nil
}

// OwnerScope returns the user id that deletes and updates must match. Admins
// get "" which matches any owner.
func OwnerScope(c echo.Context) string {
	ctx := c.Request().Context()
	if HasRole(ctx, "admin") {
		return ""
	}
	return UserIDFromContext(ctx)
}
