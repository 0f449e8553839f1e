// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct validation on a bound request.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
