package entity

import "time"

// Canje representa la presentación de un descanso médico ante EsSalud para
// su canje por subsidio. Cabeza de la cadena canje→reembolso→cobro.
// Las columnas dia/mes/anio se derivan de Fecha al escribir (reportes por
// periodo heredados del sistema original).
type Canje struct {
	ID               string
	IDDescansoMedico string
	NumeroExpediente string
	Fecha            time.Time
	Dia              int
	Mes              int
	Anio             int
	EstadoRegistro   string // etiqueta libre, sin máquina de estados
	Observacion      string
	Auditoria
}
