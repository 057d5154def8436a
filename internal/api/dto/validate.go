package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation and returns one message per violated
// field, so callers can surface the complete list instead of the first failure.
func Validate(i any) []string {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", field)
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be at most %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field failed validation (%s).", field, fe.Tag())
	}
}
