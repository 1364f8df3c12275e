package dto

import (
	"fmt"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for all request DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validate tags and maps
// failures onto apperrors.ErrValidation.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
