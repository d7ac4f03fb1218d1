package validation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is a rejected input. Handlers answer it with 400.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Errorf builds an input Error.
func Errorf(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// IsInvalid reports whether err is, or wraps, an input Error.
func IsInvalid(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// ToHTTP maps a service error to an echo error: input errors become 400,
// deadline errors pass through for the timeout middleware, anything else is
// a 500 describing the failed action.
func ToHTTP(err error, action string) error {
	if err == nil {
		return nil
	}
	if IsInvalid(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to "+action).SetInternal(err)
}
