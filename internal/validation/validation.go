// Package validation checks user edit requests against the field rules.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shopnet/user-service/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// "required" alone accepts whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Violations returns every rule the request breaks, one message per
// violation, in struct declaration order. An empty slice means the
// request is valid. No rule short-circuits the others.
func Violations(req model.UserEditRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var violations []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		violations = append(violations, violationMessage(fieldErr))
	}
	return violations
}

func violationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "notblank":
		return err.Field() + " must not be blank"
	case "email":
		return err.Field() + " must be a valid email address"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	default:
		return err.Field() + " is invalid"
	}
}
