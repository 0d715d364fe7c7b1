package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateDescansoRequest body para POST /descansos-medicos. Las fechas viajan
// como "2006-01-02"; total_dias se deriva si viene en cero.
type CreateDescansoRequest struct {
	IDPersona          string `json:"id_persona"`
	IDEmpresa          string `json:"id_empresa"`
	IDDiagnostico      string `json:"id_diagnostico"`
	IDTipoContingencia string `json:"id_tipocontingencia"`
	FechaInicio        string `json:"fecha_inicio"`
	FechaFin           string `json:"fecha_fin"`
	TotalDias          int    `json:"total_dias"`
	Observacion        string `json:"observacion"`
}

// UpdateDescansoRequest body para PATCH /descansos-medicos/:id.
type UpdateDescansoRequest struct {
	IDPersona          *string `json:"id_persona"`
	IDEmpresa          *string `json:"id_empresa"`
	IDDiagnostico      *string `json:"id_diagnostico"`
	IDTipoContingencia *string `json:"id_tipocontingencia"`
	FechaInicio        *string `json:"fecha_inicio"`
	FechaFin           *string `json:"fecha_fin"`
	TotalDias          *int    `json:"total_dias"`
	Observacion        *string `json:"observacion"`
	Estado             *bool   `json:"estado"`
}

// SoloEstado indica si el payload solo trae estado.
func (r *UpdateDescansoRequest) SoloEstado() bool {
	return r.Estado != nil &&
		r.IDPersona == nil && r.IDEmpresa == nil && r.IDDiagnostico == nil &&
		r.IDTipoContingencia == nil && r.FechaInicio == nil && r.FechaFin == nil &&
		r.TotalDias == nil && r.Observacion == nil
}

// DescansoResponse representación de un descanso médico.
type DescansoResponse struct {
	ID                 string    `json:"id"`
	IDPersona          string    `json:"id_persona"`
	IDEmpresa          string    `json:"id_empresa"`
	IDDiagnostico      string    `json:"id_diagnostico"`
	IDTipoContingencia string    `json:"id_tipocontingencia"`
	FechaInicio        time.Time `json:"fecha_inicio"`
	FechaFin           time.Time `json:"fecha_fin"`
	TotalDias          int       `json:"total_dias"`
	Observacion        string    `json:"observacion"`
	Estado             bool      `json:"estado"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewDescansoResponse convierte la entidad a su representación HTTP.
func NewDescansoResponse(d *entity.DescansoMedico) DescansoResponse {
	return DescansoResponse{
		ID:                 d.ID,
		IDPersona:          d.IDPersona,
		IDEmpresa:          d.IDEmpresa,
		IDDiagnostico:      d.IDDiagnostico,
		IDTipoContingencia: d.IDTipoContingencia,
		FechaInicio:        d.FechaInicio,
		FechaFin:           d.FechaFin,
		TotalDias:          d.TotalDias,
		Observacion:        d.Observacion,
		Estado:             d.Estado,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// NewDescansoResponseList convierte un slice de entidades.
func NewDescansoResponseList(dd []*entity.DescansoMedico) []DescansoResponse {
	out := make([]DescansoResponse, 0, len(dd))
	for _, d := range dd {
		out = append(out, NewDescansoResponse(d))
	}
	return out
}

// DescansoDetalleResponse vista enriquecida con los nombres de las relaciones.
type DescansoDetalleResponse struct {
	DescansoResponse
	Persona           string `json:"persona"`
	DocumentoPersona  string `json:"documento_persona"`
	Empresa           string `json:"empresa"`
	RUCEmpresa        string `json:"ruc_empresa"`
	CodigoDiagnostico string `json:"codigo_diagnostico"`
	Diagnostico       string `json:"diagnostico"`
	TipoContingencia  string `json:"tipo_contingencia"`
}

// NewDescansoDetalleResponse convierte la vista de detalle.
func NewDescansoDetalleResponse(det *entity.DescansoMedicoDetalle) DescansoDetalleResponse {
	return DescansoDetalleResponse{
		DescansoResponse:  NewDescansoResponse(&det.DescansoMedico),
		Persona:           det.Persona,
		DocumentoPersona:  det.DocumentoPersona,
		Empresa:           det.Empresa,
		RUCEmpresa:        det.RUCEmpresa,
		CodigoDiagnostico: det.CodigoDiagnostico,
		Diagnostico:       det.Diagnostico,
		TipoContingencia:  det.TipoContingencia,
	}
}
