package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medcare/medcare/internal/platform/auth"
)

// AuditEntry records who touched which health record and how.
type AuditEntry struct {
	UserID     string
	SubjectID  string
	Resource   string
	Action     string
	Method     string
	Path       string
	IPAddress  string
	RequestID  string
	StatusCode int
	Timestamp  time.Time
}

// Audit logs one "health_data_access" line for every request under /api/.
// The subject is the user whose data was addressed (the :userId route
// parameter), which differs from the caller when an admin or guardian acts on
// someone else's records.
func Audit(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !isAuditablePath(req.URL.Path) {
				return next(c)
			}

			err := next(c)

			entry := buildAuditEntry(c)
			status := entry.StatusCode
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			logger.Info().
				Str("type", "audit").
				Str("request_id", entry.RequestID).
				Str("user_id", entry.UserID).
				Str("subject_id", entry.SubjectID).
				Str("resource", entry.Resource).
				Str("action", entry.Action).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Str("remote_ip", entry.IPAddress).
				Int("status", status).
				Msg("health_data_access")

			return err
		}
	}
}

func buildAuditEntry(c echo.Context) AuditEntry {
	req := c.Request()
	entry := AuditEntry{
		UserID:     auth.UserIDFromContext(req.Context()),
		SubjectID:  c.Param("userId"),
		Resource:   extractResource(req.URL.Path),
		Action:     httpMethodToAction(req.Method),
		Method:     req.Method,
		Path:       req.URL.Path,
		IPAddress:  c.RealIP(),
		StatusCode: c.Response().Status,
		Timestamp:  time.Now().UTC(),
	}
	if rid, ok := c.Get("request_id").(string); ok {
		entry.RequestID = rid
	}
	if entry.SubjectID == "" {
		entry.SubjectID = c.Param("id")
	}
	return entry
}

func isAuditablePath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func httpMethodToAction(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

// extractResource returns the first segment after /api/:
//
//	/api/appointments/u1   -> appointments
//	/api/analytics/vitals  -> analytics
func extractResource(path string) string {
	rest := strings.TrimPrefix(path, "/api/")
	if rest == path {
		return "unknown"
	}
	seg, _, _ := strings.Cut(rest, "/")
	if seg == "" {
		return "unknown"
	}
	return seg
}
