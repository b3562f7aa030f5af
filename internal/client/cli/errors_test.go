package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/studyguide/internal/client/client"
	"github.com/dmitrijs2005/studyguide/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{common.ErrInvalidDomain, "Solo se permiten correos institucionales."},
		{common.ErrDuplicateUser, "Ya existe una cuenta con ese correo."},
		{fmt.Errorf("login: %w", common.ErrBadCredential), "Credenciales incorrectas."},
		{common.ErrInputTooLong, "El texto es demasiado largo. Por favor, intenta resumirlo."},
		{common.ErrTokenExpired, "Inicia sesión para continuar."},
		{client.ErrUnavailable, "Sin conexión con el servidor."},
		{errors.New("boom"), "Ocurrió un error inesperado."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, userMessage(tt.err), "%v", tt.err)
	}
}
