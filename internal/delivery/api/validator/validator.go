// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"reclaim/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the domain enum validators used by request bodies.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()

		return s == "" || entity.Strategy(s).IsValid()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.PlasticCategory(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate returns a single error listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Field() + " failed on " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return errors.New(strings.Join(msgs, "; "))
}
