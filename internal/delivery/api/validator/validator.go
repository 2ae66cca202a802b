// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"alertstream/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request bodies with struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports the first failing field.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]

			return errors.Errorf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
		}

		return errors.WithStack(err)
	}

	return nil
}
