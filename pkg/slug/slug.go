// Package slug deriva identificadores URL-safe (nombre_url) a partir del
// nombre visible de un registro. La unicidad y las búsquedas por nombre
// dependen de que esta derivación sea determinista, así que cualquier cambio
// aquí altera datos ya persistidos.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Convertir transforma un nombre visible en su slug:
// minúsculas, sin diacríticos (ñ→n incluida), solo [a-z0-9-],
// espacios internos y guiones repetidos colapsados a un guion.
// Es idempotente: Convertir(Convertir(x)) == Convertir(x).
func Convertir(nombre string) string {
	s := strings.ToLower(strings.TrimSpace(nombre))

	// NFD separa los diacríticos como marcas combinantes (Mn) y se eliminan;
	// el transformador mantiene estado, se construye por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if limpio, _, err := transform.String(t, s); err == nil {
		s = limpio
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	partes := strings.FieldsFunc(b.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(partes, "-")
}
