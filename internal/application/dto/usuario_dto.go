package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateUsuarioRequest body para POST /usuarios. La clave temporal la genera
// el sistema y se envía por correo; el cliente nunca la manda.
type CreateUsuarioRequest struct {
	IDPersona *string `json:"id_persona"`
	Nombre    string  `json:"nombre"`
	Correo    string  `json:"correo"`
	Rol       string  `json:"rol"`
}

// UpdateUsuarioRequest body para PATCH /usuarios/:id.
type UpdateUsuarioRequest struct {
	IDPersona *string `json:"id_persona"`
	Nombre    *string `json:"nombre"`
	Correo    *string `json:"correo"`
	Rol       *string `json:"rol"`
	Estado    *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateUsuarioRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDPersona == nil && r.Nombre == nil && r.Correo == nil && r.Rol == nil
}

// CambiarClaveRequest body para PATCH /usuarios/:id/clave.
type CambiarClaveRequest struct {
	ClaveActual string `json:"clave_actual"`
	ClaveNueva  string `json:"clave_nueva"`
}

// UsuarioResponse representación de un usuario. La clave nunca se expone.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	IDPersona *string   `json:"id_persona"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Rol       string    `json:"rol"`
	Estado    bool      `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUsuarioResponse convierte la entidad a su representación HTTP.
func NewUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		IDPersona: u.IDPersona,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUsuarioResponseList convierte un slice de entidades.
func NewUsuarioResponseList(uu []*entity.Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(uu))
	for _, u := range uu {
		out = append(out, NewUsuarioResponse(u))
	}
	return out
}
