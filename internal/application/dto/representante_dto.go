package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateRepresentanteRequest body para POST /representantes-legales.
type CreateRepresentanteRequest struct {
	IDEmpresa       string `json:"id_empresa"`
	IDCargo         string `json:"id_cargo"`
	IDTipoDocumento string `json:"id_tipodocumento"`
	NumeroDocumento string `json:"numero_documento"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Correo          string `json:"correo"`
	Telefono        string `json:"telefono"`
}

// UpdateRepresentanteRequest body para PATCH /representantes-legales/:id.
type UpdateRepresentanteRequest struct {
	IDEmpresa       *string `json:"id_empresa"`
	IDCargo         *string `json:"id_cargo"`
	IDTipoDocumento *string `json:"id_tipodocumento"`
	NumeroDocumento *string `json:"numero_documento"`
	Nombres         *string `json:"nombres"`
	Apellidos       *string `json:"apellidos"`
	Correo          *string `json:"correo"`
	Telefono        *string `json:"telefono"`
	Estado          *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateRepresentanteRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDEmpresa == nil && r.IDCargo == nil && r.IDTipoDocumento == nil &&
		r.NumeroDocumento == nil && r.Nombres == nil && r.Apellidos == nil &&
		r.Correo == nil && r.Telefono == nil
}

// RepresentanteLegalResponse representación de un representante legal.
type RepresentanteLegalResponse struct {
	ID              string    `json:"id"`
	IDEmpresa       string    `json:"id_empresa"`
	IDCargo         string    `json:"id_cargo"`
	NombreCargo     string    `json:"nombre_cargo"`
	IDTipoDocumento string    `json:"id_tipodocumento"`
	NumeroDocumento string    `json:"numero_documento"`
	Nombres         string    `json:"nombres"`
	Apellidos       string    `json:"apellidos"`
	Correo          string    `json:"correo"`
	Telefono        string    `json:"telefono"`
	Estado          bool      `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewRepresentanteLegalResponse convierte la entidad a su representación HTTP.
func NewRepresentanteLegalResponse(rl *entity.RepresentanteLegal) RepresentanteLegalResponse {
	return RepresentanteLegalResponse{
		ID:              rl.ID,
		IDEmpresa:       rl.IDEmpresa,
		IDCargo:         rl.IDCargo,
		NombreCargo:     rl.NombreCargo,
		IDTipoDocumento: rl.IDTipoDocumento,
		NumeroDocumento: rl.NumeroDocumento,
		Nombres:         rl.Nombres,
		Apellidos:       rl.Apellidos,
		Correo:          rl.Correo,
		Telefono:        rl.Telefono,
		Estado:          rl.Estado,
		CreatedAt:       rl.CreatedAt,
		UpdatedAt:       rl.UpdatedAt,
	}
}

// NewRepresentanteLegalResponseList convierte un slice de entidades.
func NewRepresentanteLegalResponseList(rr []*entity.RepresentanteLegal) []RepresentanteLegalResponse {
	out := make([]RepresentanteLegalResponse, 0, len(rr))
	for _, rl := range rr {
		out = append(out, NewRepresentanteLegalResponse(rl))
	}
	return out
}
