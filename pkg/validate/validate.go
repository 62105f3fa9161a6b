package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct checks the `validate` tags of v. Every failed field is reported.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return multierr.Append(ErrInvalidInput, err)
	}

	out := ErrInvalidInput
	for _, fe := range fieldErrs {
		out = multierr.Append(out, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errors.New(fe.Field() + " is required")
	case "email":
		return errors.New(fe.Field() + " must be a valid email")
	case "oneof":
		return errors.New(fe.Field() + " must be one of: " + fe.Param())
	default:
		return errors.New(fe.Field() + " failed " + fe.Tag() + " " + fe.Param())
	}
}

// Message flattens a validation error into a single client-facing line.
func Message(err error) string {
	errs := multierr.Errors(err)
	if len(errs) <= 1 {
		return err.Error()
	}
	msg := ""
	for i, e := range errs[1:] {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}
