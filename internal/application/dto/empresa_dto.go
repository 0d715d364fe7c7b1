package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateEmpresaRequest body para POST /empresas.
type CreateEmpresaRequest struct {
	RUC             string `json:"ruc"`
	RazonSocial     string `json:"razon_social"`
	NombreComercial string `json:"nombre_comercial"`
	Direccion       string `json:"direccion"`
	Distrito        string `json:"distrito"`
	Provincia       string `json:"provincia"`
	Departamento    string `json:"departamento"`
	EstadoSUNAT     string `json:"estado_sunat"`
	CondicionSUNAT  string `json:"condicion_sunat"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
}

// UpdateEmpresaRequest body para PATCH /empresas/:id. Campos en nil no se tocan.
type UpdateEmpresaRequest struct {
	RUC             *string `json:"ruc"`
	RazonSocial     *string `json:"razon_social"`
	NombreComercial *string `json:"nombre_comercial"`
	Direccion       *string `json:"direccion"`
	Distrito        *string `json:"distrito"`
	Provincia       *string `json:"provincia"`
	Departamento    *string `json:"departamento"`
	EstadoSUNAT     *string `json:"estado_sunat"`
	CondicionSUNAT  *string `json:"condicion_sunat"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"`
	Estado          *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateEmpresaRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.RUC == nil && r.RazonSocial == nil && r.NombreComercial == nil &&
		r.Direccion == nil && r.Distrito == nil && r.Provincia == nil &&
		r.Departamento == nil && r.EstadoSUNAT == nil && r.CondicionSUNAT == nil &&
		r.Telefono == nil && r.Correo == nil
}

// EmpresaResponse representación de una empresa.
type EmpresaResponse struct {
	ID              string                       `json:"id"`
	RUC             string                       `json:"ruc"`
	RazonSocial     string                       `json:"razon_social"`
	NombreURL       string                       `json:"nombre_url"`
	NombreComercial string                       `json:"nombre_comercial"`
	Direccion       string                       `json:"direccion"`
	Distrito        string                       `json:"distrito"`
	Provincia       string                       `json:"provincia"`
	Departamento    string                       `json:"departamento"`
	EstadoSUNAT     string                       `json:"estado_sunat"`
	CondicionSUNAT  string                       `json:"condicion_sunat"`
	Telefono        string                       `json:"telefono"`
	Correo          string                       `json:"correo"`
	Estado          bool                         `json:"estado"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
	Representantes  []RepresentanteLegalResponse `json:"representantes,omitempty"`
}

// NewEmpresaResponse convierte la entidad a su representación HTTP.
func NewEmpresaResponse(e *entity.Empresa) EmpresaResponse {
	resp := EmpresaResponse{
		ID:              e.ID,
		RUC:             e.RUC,
		RazonSocial:     e.RazonSocial,
		NombreURL:       e.NombreURL,
		NombreComercial: e.NombreComercial,
		Direccion:       e.Direccion,
		Distrito:        e.Distrito,
		Provincia:       e.Provincia,
		Departamento:    e.Departamento,
		EstadoSUNAT:     e.EstadoSUNAT,
		CondicionSUNAT:  e.CondicionSUNAT,
		Telefono:        e.Telefono,
		Correo:          e.Correo,
		Estado:          e.Estado,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if len(e.Representantes) > 0 {
		resp.Representantes = NewRepresentanteLegalResponseList(e.Representantes)
	}
	return resp
}

// NewEmpresaResponseList convierte un slice de entidades.
func NewEmpresaResponseList(ee []*entity.Empresa) []EmpresaResponse {
	out := make([]EmpresaResponse, 0, len(ee))
	for _, e := range ee {
		out = append(out, NewEmpresaResponse(e))
	}
	return out
}
