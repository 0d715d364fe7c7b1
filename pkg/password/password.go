// Package password genera contraseñas temporales para usuarios nuevos.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Longitud de la contraseña temporal generada.
const Longitud = 12

// Alfabetos sin caracteres ambiguos (O/0, l/1).
const (
	mayusculas = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	minusculas = "abcdefghijkmnpqrstuvwxyz"
	digitos    = "23456789"
	simbolos   = "!@#$%&*+-_?"
)

// GenerarTemporal devuelve una contraseña aleatoria de Longitud caracteres
// con al menos una mayúscula, una minúscula, un dígito y un símbolo.
func GenerarTemporal() (string, error) {
	grupos := []string{mayusculas, minusculas, digitos, simbolos}
	todos := mayusculas + minusculas + digitos + simbolos

	buf := make([]byte, 0, Longitud)
	for _, g := range grupos {
		c, err := caracterAleatorio(g)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < Longitud {
		c, err := caracterAleatorio(todos)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	// Fisher-Yates para que los caracteres garantizados no queden siempre al inicio.
	for i := len(buf) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("password: aleatorio: %w", err)
		}
		k := int(j.Int64())
		buf[i], buf[k] = buf[k], buf[i]
	}
	return string(buf), nil
}

func caracterAleatorio(alfabeto string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alfabeto))))
	if err != nil {
		return 0, fmt.Errorf("password: aleatorio: %w", err)
	}
	return alfabeto[n.Int64()], nil
}
