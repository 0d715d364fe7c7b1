package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reembolso representa el reembolso aprobado para un canje.
type Reembolso struct {
	ID               string
	IDCanje          string
	NumeroExpediente string
	Fecha            time.Time
	Dia              int
	Mes              int
	Anio             int
	Monto            decimal.Decimal
	EstadoRegistro   string
	Observacion      string
	Auditoria
}
