package entity

import "time"

// Sesion representa un token emitido en login. El ID coincide con el claim
// jti del JWT; logout marca RevocadaEn y la sesión deja de ser válida.
type Sesion struct {
	ID         string
	IDUsuario  string
	ExpiraEn   time.Time
	RevocadaEn *time.Time
	CreatedAt  time.Time
}

// Activa indica si la sesión sigue vigente.
func (s *Sesion) Activa(ahora time.Time) bool {
	return s.RevocadaEn == nil && ahora.Before(s.ExpiraEn)
}
