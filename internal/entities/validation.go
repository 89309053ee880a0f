package entities

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tag constraints of an entity. The returned
// error wraps validator.ValidationErrors.
func Validate(entity any) error {
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("invalid %T: %w", entity, err)
	}
	return nil
}
