package utils

import (
	"errors"
	"fmt"
	"hotel_manager/constants"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldErrors agrupa los mensajes por campo (nombre JSON)
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// ValidationMessages traduce los errores de validator a un mensaje por campo
func ValidationMessages(err error) FieldErrors {
	out := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("_", err.Error())
		return out
	}
	for _, fe := range verrs {
		out.Add(fieldPath(fe), tagMessage(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz: CreateHotelInput.habitaciones[0].numero -> habitaciones[0].numero
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return fe.Field()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio"
	case "min":
		return fmt.Sprintf("El valor mínimo es %s", fe.Param())
	case "max":
		return fmt.Sprintf("El valor máximo es %s", fe.Param())
	case "email":
		return "Debe ser un email válido"
	case "url":
		return "Debe ser una URL válida"
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", fe.Param())
	case "roomtype":
		return "El tipo debe ser simple o doble"
	default:
		return fmt.Sprintf("No cumple la regla %s", fe.Tag())
	}
}

func ValidationErrorResponse(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": constants.ERROR_VALIDATION,
		"errors":  errs,
	})
}
