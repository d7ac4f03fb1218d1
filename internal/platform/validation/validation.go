// Package validation adapts go-playground/validator to echo's Validator hook.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Weekdays are the tags accepted by the "weekday" rule.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StringRule is a custom tag validating a single string field.
type StringRule struct {
	Tag     string
	Message string
	Valid   func(string) bool
}

// Validator implements echo.Validator. Errors report the first failing field
// by its JSON name.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

// New returns a Validator with the "weekday" rule plus any extra rules.
func New(rules ...StringRule) *Validator {
	v := &Validator{
		validate: validator.New(),
		messages: map[string]string{
			"weekday": "must only contain " + strings.Join(Weekdays, ", "),
		},
	}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return IsWeekday(fl.Field().String())
	})

	for _, r := range rules {
		rule := r
		_ = v.validate.RegisterValidation(rule.Tag, func(fl validator.FieldLevel) bool {
			return rule.Valid(fl.Field().String())
		})
		if rule.Message != "" {
			v.messages[rule.Tag] = rule.Message
		}
	}
	return v
}

// IsWeekday reports whether s is one of Mon..Sun.
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if s == d {
			return true
		}
	}
	return false
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, v.describe(verrs[0]))
}

func (v *Validator) describe(fe validator.FieldError) string {
	field := fe.Field()
	if msg, ok := v.messages[fe.Tag()]; ok {
		return fmt.Sprintf("%s %s", field, msg)
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gt", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
