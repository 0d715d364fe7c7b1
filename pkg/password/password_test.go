package password_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsalazar/descansos-api/pkg/password"
)

// La contraseña temporal debe cumplir la política siempre, no "casi siempre":
// se generan varias y todas deben tener las cuatro clases de caracteres.
func TestGenerarTemporal_CumplePolitica(t *testing.T) {
	for i := 0; i < 200; i++ {
		clave, err := password.GenerarTemporal()
		require.NoError(t, err)
		require.Len(t, clave, password.Longitud)

		var mayus, minus, digito, simbolo bool
		for _, r := range clave {
			switch {
			case unicode.IsUpper(r):
				mayus = true
			case unicode.IsLower(r):
				minus = true
			case unicode.IsDigit(r):
				digito = true
			default:
				simbolo = true
			}
		}
		assert.True(t, mayus, "debe incluir mayúscula: %q", clave)
		assert.True(t, minus, "debe incluir minúscula: %q", clave)
		assert.True(t, digito, "debe incluir dígito: %q", clave)
		assert.True(t, simbolo, "debe incluir símbolo: %q", clave)
	}
}

func TestGenerarTemporal_NoRepiteEntreLlamadas(t *testing.T) {
	vistas := make(map[string]bool)
	for i := 0; i < 50; i++ {
		clave, err := password.GenerarTemporal()
		require.NoError(t, err)
		assert.False(t, vistas[clave], "contraseña repetida: %q", clave)
		vistas[clave] = true
	}
}

func TestGenerarTemporal_SinEspacios(t *testing.T) {
	clave, err := password.GenerarTemporal()
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(clave, " \t\n"))
}
