package entity

import "time"

// DescansoMedico representa un periodo de descanso médico otorgado a una
// persona, asociado a una empresa, un diagnóstico y un tipo de contingencia.
type DescansoMedico struct {
	ID                 string
	IDPersona          string
	IDEmpresa          string
	IDDiagnostico      string
	IDTipoContingencia string
	FechaInicio        time.Time
	FechaFin           time.Time
	TotalDias          int
	Observacion        string
	Auditoria
}

// DescansoMedicoDetalle es la vista enriquecida de un descanso con los
// nombres de sus relaciones, usada en lecturas por ID y en la constancia PDF.
type DescansoMedicoDetalle struct {
	DescansoMedico
	Persona           string // nombre completo
	DocumentoPersona  string
	Empresa           string // razón social
	RUCEmpresa        string
	CodigoDiagnostico string
	Diagnostico       string
	TipoContingencia  string
}
