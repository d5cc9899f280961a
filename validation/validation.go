package validation

import (
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = v10.New()

// Validate runs struct validation using go-playground/validator.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// FormatValidationErrors converts validator.ValidationErrors into a slice
// of FieldError where Code follows the pattern "INVALID_<RULE>|<param>"
// when the rule carries a parameter.
func FormatValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		return []FieldError{{Code: "INVALID", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, f := range ve {
		code := "INVALID_" + strings.ToUpper(f.Tag())
		if param := f.Param(); param != "" {
			code += "|" + param
		}
		out = append(out, FieldError{
			Field:   strings.ToLower(f.Field()),
			Code:    code,
			Message: f.Error(),
		})
	}
	return out
}
