package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps wire field names to user-facing labels
var FieldLabels = map[string]string{
	// Account
	"nombre":     "Nombre",
	"codigo":     "Código",
	"correo":     "Correo",
	"contrasena": "Contraseña",

	// Application
	"nombres":   "Nombres",
	"apellidos": "Apellidos",
	"vacanteId": "Vacante",

	// Vacancy
	"titulo":      "Título",
	"descripcion": "Descripción",
	"ubicacion":   "Ubicación",
	"salario":     "Salario",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Detail joins the formatted messages into one diagnostic string.
func Detail(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: es requerido", label)
	case "email":
		return fmt.Sprintf("%s: formato de correo inválido", label)
	case "max":
		return fmt.Sprintf("%s: máximo %s caracteres", label, e.Param())
	case "gt":
		return fmt.Sprintf("%s: debe ser mayor que %s", label, e.Param())
	default:
		return fmt.Sprintf("%s: validación fallida (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
