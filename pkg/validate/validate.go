// Package validate bridges go-playground/validator into echo so request
// structs are checked synchronously before any collaborator call.
package validate

import (
	"github.com/go-playground/validator/v10"
)

type EchoValidator struct {
	v *validator.Validate
}

func New() *EchoValidator {
	return &EchoValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate satisfies echo.Validator; callers decide the HTTP status.
func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.v.Struct(i)
}
