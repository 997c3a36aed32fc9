package store

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// newValidator returns a configured validator with the custom phone rule
// registered and field names reported by their json tags.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()

	// 10 or 11 digits, nothing else
	v.RegisterValidation("phone", func(fl validatorv10.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// toValidationError converts validator output into the field→reason map
// surfaced to the caller.
func toValidationError(err error) *ValidationError {
	fields := map[string]string{}

	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["input"] = err.Error()
		return &ValidationError{Fields: fields}
	}

	for _, fe := range verrs {
		fields[fe.Field()] = reasonFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func reasonFor(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return "must be 10 to 11 digits"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
