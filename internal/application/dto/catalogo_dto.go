package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateCatalogoRequest body para POST de cualquier tabla de referencia
// (países, cargos, sedes, áreas, tipos de documento, tipos de contingencia).
type CreateCatalogoRequest struct {
	Nombre string `json:"nombre"`
}

// UpdateCatalogoRequest body para PATCH /:id. Campos en nil no se tocan.
type UpdateCatalogoRequest struct {
	Nombre *string `json:"nombre"`
	Estado *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado (ruta a UpdateEstado).
func (r *UpdateCatalogoRequest) SoloEstado() bool {
	return r.Nombre == nil && r.Estado != nil
}

// UpdateEstadoRequest body para PATCH /update-estado/:id.
type UpdateEstadoRequest struct {
	Estado bool `json:"estado"`
}

// CatalogoResponse representación de una fila de catálogo.
type CatalogoResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	NombreURL string    `json:"nombre_url"`
	Estado    bool      `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCatalogoResponse convierte la entidad a su representación HTTP.
func NewCatalogoResponse(c *entity.Catalogo) CatalogoResponse {
	return CatalogoResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		NombreURL: c.NombreURL,
		Estado:    c.Estado,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCatalogoResponseList convierte un slice de entidades.
func NewCatalogoResponseList(cc []*entity.Catalogo) []CatalogoResponse {
	out := make([]CatalogoResponse, 0, len(cc))
	for _, c := range cc {
		out = append(out, NewCatalogoResponse(c))
	}
	return out
}
