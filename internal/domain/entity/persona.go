package entity

import "time"

// Persona representa a una persona natural del dominio (trabajador, paciente).
type Persona struct {
	ID              string
	IDTipoDocumento string
	NumeroDocumento string // único entre filas activas
	Nombres         string
	ApellidoPaterno string
	ApellidoMaterno string
	FechaNacimiento *time.Time
	Sexo            string // "M" | "F"
	Direccion       string
	Telefono        string
	Correo          string
	Auditoria
}

// NombreCompleto devuelve nombres y apellidos concatenados.
func (p *Persona) NombreCompleto() string {
	s := p.Nombres
	if p.ApellidoPaterno != "" {
		s += " " + p.ApellidoPaterno
	}
	if p.ApellidoMaterno != "" {
		s += " " + p.ApellidoMaterno
	}
	return s
}
