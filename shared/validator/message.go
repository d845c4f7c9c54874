package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
	}
)

// message renders a validation error into a human-readable summary plus
// field-level detail keyed by the JSON field name.
func message(err error) (string, map[string][]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	fieldErrors := map[string][]string{}
	first := ""

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			errStr = "{field} is invalid"
		}

		errStr = strings.ReplaceAll(errStr, "{field}", field)
		errStr = strings.ReplaceAll(errStr, "{param}", param)

		if first == "" {
			first = errStr
		}

		fieldErrors[field] = append(fieldErrors[field], errStr)
	}

	if first == "" {
		return valErrors.Error(), nil
	}

	return first, fieldErrors
}
