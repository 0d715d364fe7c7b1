package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateDiagnosticoRequest body para POST /diagnosticos.
type CreateDiagnosticoRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// UpdateDiagnosticoRequest body para PATCH /diagnosticos/:id.
type UpdateDiagnosticoRequest struct {
	Codigo *string `json:"codigo"`
	Nombre *string `json:"nombre"`
	Estado *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateDiagnosticoRequest) SoloEstado() bool {
	return r.Estado != nil && r.Codigo == nil && r.Nombre == nil
}

// DiagnosticoResponse representación de un diagnóstico CIE-10.
type DiagnosticoResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	NombreURL string    `json:"nombre_url"`
	Estado    bool      `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDiagnosticoResponse convierte la entidad a su representación HTTP.
func NewDiagnosticoResponse(d *entity.Diagnostico) DiagnosticoResponse {
	return DiagnosticoResponse{
		ID:        d.ID,
		Codigo:    d.Codigo,
		Nombre:    d.Nombre,
		NombreURL: d.NombreURL,
		Estado:    d.Estado,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// NewDiagnosticoResponseList convierte un slice de entidades.
func NewDiagnosticoResponseList(dd []*entity.Diagnostico) []DiagnosticoResponse {
	out := make([]DiagnosticoResponse, 0, len(dd))
	for _, d := range dd {
		out = append(out, NewDiagnosticoResponse(d))
	}
	return out
}
