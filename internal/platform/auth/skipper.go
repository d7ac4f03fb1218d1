package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths are route patterns reachable without a bearer token. The
// guardian verification link is opened by the guardian, who has no account.
var publicPaths = map[string]bool{
	"/health":                    true,
	"/api/guardian/verify-email": true,
}

// AuthSkipper returns true for requests whose route should skip authentication.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given route pattern bypasses auth.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
