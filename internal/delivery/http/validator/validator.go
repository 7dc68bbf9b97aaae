// Package validator plugs go-playground/validator into echo and translates
// its raw errors into field-scoped messages for API responses.
package validator

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for echo's Validator hook.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP delivery.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Fields converts a validation error into a field -> message map. Non
// field-level errors come back as a single "_request" entry so callers always
// have something to render.
func Fields(err error) map[string]string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_request": "Invalid request body"}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[jsonFieldName(fe.Field())] = describe(fe)
	}

	return fields
}

// describe builds a human-readable message per failed rule.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please inform a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "eqfield":
		return fe.Field() + " doesn't match " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// jsonFieldName lowercases the leading rune to match the JSON body keys.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}

	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
