// Package validation checks request DTOs with go-playground/validator and
// reports the first failure as a models.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-payment-wallet/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("reference", isReference); err != nil {
		panic(err)
	}
	return v
}

// isReference accepts letters, digits, '-' and '_'.
func isReference(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return toValidationError("", validate.Struct(s))
}

// Var validates a single value under the given field name.
func Var(field string, value any, tag string) error {
	return toValidationError(field, validate.Var(value, tag))
}

func toValidationError(field string, err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	e := errs[0]
	if field == "" {
		field = e.Field()
	}
	return models.NewValidationError(field, message(e))
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", e.Param())
	case "min":
		return fmt.Sprintf("must have minimum length %s", e.Param())
	case "max":
		return fmt.Sprintf("must have maximum length %s", e.Param())
	case "number":
		return "must contain only digits"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "reference":
		return "must contain only letters, digits, '-' or '_'"
	default:
		return fmt.Sprintf("is invalid (%s)", e.Tag())
	}
}
