package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// PersonaPayload campos comunes de alta y edición de personas. La fecha de
// nacimiento viaja como "2006-01-02".
type PersonaPayload struct {
	IDTipoDocumento string `json:"id_tipodocumento"`
	NumeroDocumento string `json:"numero_documento"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Sexo            string `json:"sexo"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
}

// CreatePersonaRequest body para POST /personas.
type CreatePersonaRequest struct {
	PersonaPayload
}

// UpdatePersonaRequest body para PATCH /personas/:id. Campos en nil no se tocan.
type UpdatePersonaRequest struct {
	IDTipoDocumento *string `json:"id_tipodocumento"`
	NumeroDocumento *string `json:"numero_documento"`
	Nombres         *string `json:"nombres"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Sexo            *string `json:"sexo"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"`
	Estado          *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdatePersonaRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDTipoDocumento == nil && r.NumeroDocumento == nil &&
		r.Nombres == nil && r.ApellidoPaterno == nil && r.ApellidoMaterno == nil &&
		r.FechaNacimiento == nil && r.Sexo == nil &&
		r.Direccion == nil && r.Telefono == nil && r.Correo == nil
}

// PersonaResponse representación de una persona.
type PersonaResponse struct {
	ID              string     `json:"id"`
	IDTipoDocumento string     `json:"id_tipodocumento"`
	NumeroDocumento string     `json:"numero_documento"`
	Nombres         string     `json:"nombres"`
	ApellidoPaterno string     `json:"apellido_paterno"`
	ApellidoMaterno string     `json:"apellido_materno"`
	NombreCompleto  string     `json:"nombre_completo"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	Sexo            string     `json:"sexo"`
	Direccion       string     `json:"direccion"`
	Telefono        string     `json:"telefono"`
	Correo          string     `json:"correo"`
	Estado          bool       `json:"estado"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewPersonaResponse convierte la entidad a su representación HTTP.
func NewPersonaResponse(p *entity.Persona) PersonaResponse {
	return PersonaResponse{
		ID:              p.ID,
		IDTipoDocumento: p.IDTipoDocumento,
		NumeroDocumento: p.NumeroDocumento,
		Nombres:         p.Nombres,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		NombreCompleto:  p.NombreCompleto(),
		FechaNacimiento: p.FechaNacimiento,
		Sexo:            p.Sexo,
		Direccion:       p.Direccion,
		Telefono:        p.Telefono,
		Correo:          p.Correo,
		Estado:          p.Estado,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewPersonaResponseList convierte un slice de entidades.
func NewPersonaResponseList(pp []*entity.Persona) []PersonaResponse {
	out := make([]PersonaResponse, 0, len(pp))
	for _, p := range pp {
		out = append(out, NewPersonaResponse(p))
	}
	return out
}
