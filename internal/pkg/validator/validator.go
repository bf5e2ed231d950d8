package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

var tagStripper = strings.NewReplacer("<", "", ">", "")

// Sanitize trims whitespace and strips angle brackets so form input can be
// embedded in emails and admin pages without markup injection.
func Sanitize(s string) string {
	return strings.TrimSpace(tagStripper.Replace(s))
}

// ValidPhone accepts phone numbers with 8 to 15 digits; spaces, dashes,
// parentheses and a leading plus are allowed as formatting.
func ValidPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')':
		case r == '+' && i == 0:
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}
