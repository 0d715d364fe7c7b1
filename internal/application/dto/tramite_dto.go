package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// DTOs de la cadena de trámite canje→reembolso→cobro. Las fechas viajan como
// "2006-01-02"; dia/mes/anio los deriva el caso de uso, nunca el cliente.

// ── Canje ─────────────────────────────────────────────────────────────────────

// CreateCanjeRequest body para POST /canjes.
type CreateCanjeRequest struct {
	IDDescansoMedico string `json:"id_descansomedico"`
	NumeroExpediente string `json:"numero_expediente"`
	Fecha            string `json:"fecha"`
	EstadoRegistro   string `json:"estado_registro"`
	Observacion      string `json:"observacion"`
}

// UpdateCanjeRequest body para PATCH /canjes/:id.
type UpdateCanjeRequest struct {
	IDDescansoMedico *string `json:"id_descansomedico"`
	NumeroExpediente *string `json:"numero_expediente"`
	Fecha            *string `json:"fecha"`
	EstadoRegistro   *string `json:"estado_registro"`
	Observacion      *string `json:"observacion"`
	Estado           *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateCanjeRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDDescansoMedico == nil && r.NumeroExpediente == nil &&
		r.Fecha == nil && r.EstadoRegistro == nil && r.Observacion == nil
}

// CanjeResponse representación de un canje.
type CanjeResponse struct {
	ID               string    `json:"id"`
	IDDescansoMedico string    `json:"id_descansomedico"`
	NumeroExpediente string    `json:"numero_expediente"`
	Fecha            time.Time `json:"fecha"`
	Dia              int       `json:"dia"`
	Mes              int       `json:"mes"`
	Anio             int       `json:"anio"`
	EstadoRegistro   string    `json:"estado_registro"`
	Observacion      string    `json:"observacion"`
	Estado           bool      `json:"estado"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewCanjeResponse convierte la entidad a su representación HTTP.
func NewCanjeResponse(c *entity.Canje) CanjeResponse {
	return CanjeResponse{
		ID:               c.ID,
		IDDescansoMedico: c.IDDescansoMedico,
		NumeroExpediente: c.NumeroExpediente,
		Fecha:            c.Fecha,
		Dia:              c.Dia,
		Mes:              c.Mes,
		Anio:             c.Anio,
		EstadoRegistro:   c.EstadoRegistro,
		Observacion:      c.Observacion,
		Estado:           c.Estado,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// NewCanjeResponseList convierte un slice de entidades.
func NewCanjeResponseList(cc []*entity.Canje) []CanjeResponse {
	out := make([]CanjeResponse, 0, len(cc))
	for _, c := range cc {
		out = append(out, NewCanjeResponse(c))
	}
	return out
}

// ── Reembolso ─────────────────────────────────────────────────────────────────

// CreateReembolsoRequest body para POST /reembolsos.
type CreateReembolsoRequest struct {
	IDCanje          string          `json:"id_canje"`
	NumeroExpediente string          `json:"numero_expediente"`
	Fecha            string          `json:"fecha"`
	Monto            decimal.Decimal `json:"monto"`
	EstadoRegistro   string          `json:"estado_registro"`
	Observacion      string          `json:"observacion"`
}

// UpdateReembolsoRequest body para PATCH /reembolsos/:id.
type UpdateReembolsoRequest struct {
	IDCanje          *string          `json:"id_canje"`
	NumeroExpediente *string          `json:"numero_expediente"`
	Fecha            *string          `json:"fecha"`
	Monto            *decimal.Decimal `json:"monto"`
	EstadoRegistro   *string          `json:"estado_registro"`
	Observacion      *string          `json:"observacion"`
	Estado           *bool            `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateReembolsoRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDCanje == nil && r.NumeroExpediente == nil && r.Fecha == nil &&
		r.Monto == nil && r.EstadoRegistro == nil && r.Observacion == nil
}

// ReembolsoResponse representación de un reembolso.
type ReembolsoResponse struct {
	ID               string          `json:"id"`
	IDCanje          string          `json:"id_canje"`
	NumeroExpediente string          `json:"numero_expediente"`
	Fecha            time.Time       `json:"fecha"`
	Dia              int             `json:"dia"`
	Mes              int             `json:"mes"`
	Anio             int             `json:"anio"`
	Monto            decimal.Decimal `json:"monto"`
	EstadoRegistro   string          `json:"estado_registro"`
	Observacion      string          `json:"observacion"`
	Estado           bool            `json:"estado"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewReembolsoResponse convierte la entidad a su representación HTTP.
func NewReembolsoResponse(re *entity.Reembolso) ReembolsoResponse {
	return ReembolsoResponse{
		ID:               re.ID,
		IDCanje:          re.IDCanje,
		NumeroExpediente: re.NumeroExpediente,
		Fecha:            re.Fecha,
		Dia:              re.Dia,
		Mes:              re.Mes,
		Anio:             re.Anio,
		Monto:            re.Monto,
		EstadoRegistro:   re.EstadoRegistro,
		Observacion:      re.Observacion,
		Estado:           re.Estado,
		CreatedAt:        re.CreatedAt,
		UpdatedAt:        re.UpdatedAt,
	}
}

// NewReembolsoResponseList convierte un slice de entidades.
func NewReembolsoResponseList(rr []*entity.Reembolso) []ReembolsoResponse {
	out := make([]ReembolsoResponse, 0, len(rr))
	for _, re := range rr {
		out = append(out, NewReembolsoResponse(re))
	}
	return out
}

// ── Cobro ─────────────────────────────────────────────────────────────────────

// CreateCobroRequest body para POST /cobros.
type CreateCobroRequest struct {
	IDReembolso    string          `json:"id_reembolso"`
	NumeroCheque   string          `json:"numero_cheque"`
	NumeroVoucher  string          `json:"numero_voucher"`
	Fecha          string          `json:"fecha"`
	Monto          decimal.Decimal `json:"monto"`
	EstadoRegistro string          `json:"estado_registro"`
	Observacion    string          `json:"observacion"`
}

// UpdateCobroRequest body para PATCH /cobros/:id.
type UpdateCobroRequest struct {
	IDReembolso    *string          `json:"id_reembolso"`
	NumeroCheque   *string          `json:"numero_cheque"`
	NumeroVoucher  *string          `json:"numero_voucher"`
	Fecha          *string          `json:"fecha"`
	Monto          *decimal.Decimal `json:"monto"`
	EstadoRegistro *string          `json:"estado_registro"`
	Observacion    *string          `json:"observacion"`
	Estado         *bool            `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateCobroRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDReembolso == nil && r.NumeroCheque == nil && r.NumeroVoucher == nil &&
		r.Fecha == nil && r.Monto == nil && r.EstadoRegistro == nil && r.Observacion == nil
}

// CobroResponse representación de un cobro.
type CobroResponse struct {
	ID             string          `json:"id"`
	IDReembolso    string          `json:"id_reembolso"`
	NumeroCheque   string          `json:"numero_cheque"`
	NumeroVoucher  string          `json:"numero_voucher"`
	Fecha          time.Time       `json:"fecha"`
	Dia            int             `json:"dia"`
	Mes            int             `json:"mes"`
	Anio           int             `json:"anio"`
	Monto          decimal.Decimal `json:"monto"`
	EstadoRegistro string          `json:"estado_registro"`
	Observacion    string          `json:"observacion"`
	Estado         bool            `json:"estado"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCobroResponse convierte la entidad a su representación HTTP.
func NewCobroResponse(c *entity.Cobro) CobroResponse {
	return CobroResponse{
		ID:             c.ID,
		IDReembolso:    c.IDReembolso,
		NumeroCheque:   c.NumeroCheque,
		NumeroVoucher:  c.NumeroVoucher,
		Fecha:          c.Fecha,
		Dia:            c.Dia,
		Mes:            c.Mes,
		Anio:           c.Anio,
		Monto:          c.Monto,
		EstadoRegistro: c.EstadoRegistro,
		Observacion:    c.Observacion,
		Estado:         c.Estado,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewCobroResponseList convierte un slice de entidades.
func NewCobroResponseList(cc []*entity.Cobro) []CobroResponse {
	out := make([]CobroResponse, 0, len(cc))
	for _, c := range cc {
		out = append(out, NewCobroResponse(c))
	}
	return out
}
