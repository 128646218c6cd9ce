package model

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailShape treats any Unicode space or separator as whitespace, not only
// ASCII.
var emailShape = regexp.MustCompile(`^[^@\s\p{Z}\v\x{85}]+@[^@\s\p{Z}\v\x{85}]+\.[^@\s\p{Z}\v\x{85}]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldError describes one failed constraint.
type FieldError struct {
	Field   string
	Problem string
}

// ValidationError is returned when an entity violates its constraints.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	noun := "errors"
	if len(e.Fields) == 1 {
		noun = "error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return fmt.Sprintf("%d validation %s for %s: %s", len(e.Fields), noun, e.Entity, strings.Join(parts, "; "))
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validateStruct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", entity, err)
	}
	ve := &ValidationError{Entity: entity}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Problem: describe(fe)})
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "ensure this value has at least " + fe.Param() + " characters"
	case "max":
		return "ensure this value has at most " + fe.Param() + " characters"
	case "email_shape":
		return "value is not a valid email address"
	case "http_url":
		return "invalid or missing URL scheme"
	default:
		return "failed on the '" + fe.Tag() + "' constraint"
	}
}
