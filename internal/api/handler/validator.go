package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
// Messages are in Portuguese, the language of the admin front end.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " é obrigatório"
	case "email":
		return field + " deve ser um email válido"
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s deve ter %s caracteres", field, fe.Param())
	default:
		return fmt.Sprintf("%s inválido (%s)", field, fe.Tag())
	}
}
