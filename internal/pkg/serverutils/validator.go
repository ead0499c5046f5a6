package serverutils

import (
	"fmt"

	"github.com/237films-bot/subtrack/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tags on a request DTO and converts
// failures into the ErrValidation taxonomy so the error handler returns 422.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrValidation, err.Error())
	}
	return nil
}
