package validator

import (
	"reflect"
	"strings"

	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/types"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func NewValidator() *validator.Validate {
	validate = validator.New()

	// report json field names so details match the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// country accepts anything NormalizeCountry understands
	_ = validate.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return types.IsKnownCountry(fl.Field().String())
	})

	return validate
}

func ValidateRequest(req interface{}) error {
	if validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before using it").
			Mark(ierr.ErrSystem)
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
