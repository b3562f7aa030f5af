package cli

import (
	"errors"

	"github.com/dmitrijs2005/studyguide/internal/client/client"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/dmitrijs2005/studyguide/internal/generation"
)

// userMessage turns an error from the services into the Spanish text shown
// on screen.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrInvalidDomain):
		return "Solo se permiten correos institucionales."
	case errors.Is(err, common.ErrDuplicateUser):
		return "Ya existe una cuenta con ese correo."
	case errors.Is(err, common.ErrBadCredential):
		return "Credenciales incorrectas."
	case errors.Is(err, common.ErrValidation):
		return "Completa todos los campos."
	case errors.Is(err, common.ErrNoTopics):
		return "Selecciona al menos un tema."
	case errors.Is(err, common.ErrEmptyInput):
		return "Escribe tu pregunta antes de enviarla."
	case errors.Is(err, common.ErrInputTooLong):
		return generation.MsgTooLong
	case errors.Is(err, common.ErrGenerationFailed):
		return "No se pudo generar la respuesta. Inténtalo más tarde."
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return "Inicia sesión para continuar."
	case errors.Is(err, common.ErrNotFound):
		return "No se encontró el elemento solicitado."
	case errors.Is(err, common.ErrNotConfigured):
		return "La exportación no está disponible en este servidor."
	case errors.Is(err, client.ErrUnavailable):
		return "Sin conexión con el servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
