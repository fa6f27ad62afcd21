package app_error

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JSONFieldName makes validator report fields by their json name.
func JSONFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(JSONFieldName)
	return validate
}

// FromBindingError turns validator output into field errors. Anything else, such as
// malformed JSON, is reported against the request body.
func FromBindingError(err error) *ValidationError {
	validationErr := NewValidationError()
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			validationErr.Add(fe.Field(), fieldMessage(fe))
		}
		return validationErr
	}
	validationErr.Add("body", err.Error())
	return validationErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + unitOf(fe)
	case "max":
		return "must be at most " + fe.Param() + unitOf(fe)
	}
	return "is invalid"
}

func unitOf(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " item(s)"
	}
	return ""
}
