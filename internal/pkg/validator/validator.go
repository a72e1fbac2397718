// Package validator wraps go-playground/validator for tag based struct validation.
// Fields are reported under their `envconfig` name when they carry one, so a
// configuration error names the variable to fix.
package validator

import (
	"errors"
	"fmt"
	"reflect"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed leads the joined error returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator = newValidator()

func newValidator() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	return v
}

func fieldName(field reflect.StructField) string {
	if name := field.Tag.Get("envconfig"); name != "" {
		return name
	}
	return field.Name
}

// formatError turns validator field errors into ErrValidationFailed joined with one
// message per field. Any other error is returned as is.
func formatError(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}
