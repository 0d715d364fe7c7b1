package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bsalazar/descansos-api/pkg/slug"
)

// La derivación de nombre_url debe ser bit-exacta: la unicidad de los
// catálogos y las búsquedas dependen de ella.
func TestConvertir_CasosConocidos(t *testing.T) {
	casos := []struct {
		nombre   string
		esperado string
	}{
		{"MÉDICO OCUPACIONAL", "medico-ocupacional"},
		{"Accidente de Tránsito", "accidente-de-transito"},
		{"Recursos Humanos", "recursos-humanos"},
		{"Año Sabático", "ano-sabatico"},
		{"  Área   de  Niños  ", "area-de-ninos"},
		{"Cirugía -- Mayor", "cirugia-mayor"},
		{"CIE-10: J06.9 (Infección)", "cie-10-j069-infeccion"},
		{"", ""},
		{"¡¿@!", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, slug.Convertir(c.nombre), "nombre: %q", c.nombre)
	}
}

func TestConvertir_Idempotente(t *testing.T) {
	nombres := []string{
		"MÉDICO OCUPACIONAL",
		"Accidente de Tránsito",
		"Señalización Vial",
		"descanso-medico",
	}
	for _, n := range nombres {
		una := slug.Convertir(n)
		assert.Equal(t, una, slug.Convertir(una), "Convertir debe ser idempotente para %q", n)
	}
}

func TestConvertir_EnieSeConvierteEnN(t *testing.T) {
	assert.Equal(t, "nino", slug.Convertir("Niño"))
	assert.Equal(t, "senal", slug.Convertir("SEÑAL"))
}
