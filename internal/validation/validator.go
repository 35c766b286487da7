// Package validation holds the request validator shared by the handlers.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the singleton validator instance.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
			return fld.Name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && strings.TrimSpace(field) != ""
		})

		_ = validate.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && IsHTTPURL(field)
		})

		_ = validate.RegisterValidation("link_type", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && models.LinkType(field).Valid()
		})

		_ = validate.RegisterValidation("effect", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && models.Effect(field).Valid()
		})

		_ = validate.RegisterValidation("vertical", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && (ordering.Direction(field) == ordering.Up || ordering.Direction(field) == ordering.Down)
		})

		_ = validate.RegisterValidation("horizontal", func(fl validator.FieldLevel) bool {
			field, ok := stringField(fl)
			return ok && (ordering.Direction(field) == ordering.Left || ordering.Direction(field) == ordering.Right)
		})
	})
	return validate
}

// stringField returns the string behind a field, dereferencing pointers.
func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

// IsHTTPURL reports whether raw is an absolute http or https URL.
func IsHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.TrimSpace(u.Host) != ""
}

// Validate validates a struct and returns an error if invalid.
func Validate(s any) error {
	return Get().Struct(s)
}

// Message turns a validation error into a short client-facing sentence.
func Message(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request body"
	}
	e := errs[0]
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", e.Field())
	case "http_url":
		return fmt.Sprintf("%s must be an http or https URL", e.Field())
	case "link_type":
		return fmt.Sprintf("%s must be one of gold, neon-purple, neon-green, glass", e.Field())
	case "effect":
		return fmt.Sprintf("%s must be one of none, particles, gradient, aurora", e.Field())
	case "vertical":
		return fmt.Sprintf("%s must be up or down", e.Field())
	case "horizontal":
		return fmt.Sprintf("%s must be left or right", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
