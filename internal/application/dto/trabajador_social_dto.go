package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateTrabajadorSocialRequest body para POST /trabajadores-sociales.
// Incluye el payload de la persona: ambas filas se escriben en una
// transacción.
type CreateTrabajadorSocialRequest struct {
	Persona           PersonaPayload `json:"persona"`
	IDSede            string         `json:"id_sede"`
	CodigoColegiatura string         `json:"codigo_colegiatura"`
}

// UpdateTrabajadorSocialRequest body para PATCH /trabajadores-sociales/:id.
// Solo los datos propios del trabajador; la persona se edita por /personas.
type UpdateTrabajadorSocialRequest struct {
	IDSede            *string `json:"id_sede"`
	CodigoColegiatura *string `json:"codigo_colegiatura"`
	Estado            *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateTrabajadorSocialRequest) SoloEstado() bool {
	return r.Estado != nil && r.IDSede == nil && r.CodigoColegiatura == nil
}

// TrabajadorSocialResponse representación de un trabajador social con su persona.
type TrabajadorSocialResponse struct {
	ID                string           `json:"id"`
	IDSede            string           `json:"id_sede"`
	CodigoColegiatura string           `json:"codigo_colegiatura"`
	Persona           *PersonaResponse `json:"persona,omitempty"`
	Estado            bool             `json:"estado"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NewTrabajadorSocialResponse convierte la entidad a su representación HTTP.
func NewTrabajadorSocialResponse(t *entity.TrabajadorSocial) TrabajadorSocialResponse {
	resp := TrabajadorSocialResponse{
		ID:                t.ID,
		IDSede:            t.IDSede,
		CodigoColegiatura: t.CodigoColegiatura,
		Estado:            t.Estado,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.Persona != nil {
		p := NewPersonaResponse(t.Persona)
		resp.Persona = &p
	}
	return resp
}

// NewTrabajadorSocialResponseList convierte un slice de entidades.
func NewTrabajadorSocialResponseList(tt []*entity.TrabajadorSocial) []TrabajadorSocialResponse {
	out := make([]TrabajadorSocialResponse, 0, len(tt))
	for _, t := range tt {
		out = append(out, NewTrabajadorSocialResponse(t))
	}
	return out
}
