// Package apperror maps request validation failures to response payloads.
package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages converts a validator error into a list of per-field
// messages suitable for a client-error response body.
func ValidationMessages(err error) []map[string]string {
	msgs := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		msgs = append(msgs, map[string]string{"error": err.Error()})
		return msgs
	}

	for _, e := range validationErr {
		msgs = append(msgs, map[string]string{e.Field(): message(e)})
	}

	return msgs
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "dateonly":
		return "must be a valid date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
