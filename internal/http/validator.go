package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("direction", validateDirection)
}

func validateDirection(fl validator.FieldLevel) bool {
	d := fl.Field().String()
	return d == "up" || d == "down"
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "direction":
			message = fmt.Sprintf("%s must be \"up\" or \"down\"", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}

// toErrorDetails converts validator output to response details.
func toErrorDetails(errs []ValidationError) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, ErrorDetail{Field: e.Field, Message: e.Message})
	}
	return details
}
