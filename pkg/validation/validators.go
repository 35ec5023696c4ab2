package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, numbers, spaces, and common name punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Usernames: letters, digits, underscore and dot, 3-30 chars
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,30}$`)

	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_username", ValidUsername)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidName validates that a string contains only valid name characters.
// Empty strings pass; combine with required when the field is mandatory.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidUsername validates the login handle shape
func ValidUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
