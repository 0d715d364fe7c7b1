package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cobro representa el cobro efectivo de un reembolso. El número de cheque y
// el número de voucher no pueden repetirse en otras filas activas (validación
// multi-campo).
type Cobro struct {
	ID             string
	IDReembolso    string
	NumeroCheque   string
	NumeroVoucher  string
	Fecha          time.Time
	Dia            int
	Mes            int
	Anio           int
	Monto          decimal.Decimal
	EstadoRegistro string
	Observacion    string
	Auditoria
}
