package logic

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/antonio-alexander/go-bizadmin/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = store.ErrNotFound
	ErrConflict       = store.ErrConflict
	ErrInvalid        = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrMutateDisabled = errors.New("mutation disabled")
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct returns ErrInvalid wrapped with a message naming the first
// failing field.
func validateStruct(item any) error {
	err := validate.Struct(item)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return errors.Wrap(ErrInvalid, fieldMessage(validationErrors[0]))
}

func fieldMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	default:
		return fmt.Sprintf("%s failed %s validation", fieldError.Field(), fieldError.Tag())
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fieldError.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldError.Field(), fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldError.Field(), fieldError.Param())
	}
}
