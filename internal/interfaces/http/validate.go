package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; es segura para uso concurrente y cachea la
// metadata de los structs.
var validate = validator.New()

// validarStruct corre las reglas `validate` del DTO y devuelve un mensaje
// apuntando al primer campo inválido.
func validarStruct(in any) (string, bool) {
	if err := validate.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return "campo inválido: " + errs[0].Field(), false
		}
		return "cuerpo inválido", false
	}
	return "", true
}
