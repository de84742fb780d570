package models

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a DTO against its struct tags. Request constructors
// call this so malformed payloads never reach the wire.
func Validate(v any) error {
	return validate.Struct(v)
}
