package dto

import (
	"time"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CreateDocumentoRequest metadatos del multipart de POST /documentos. El
// archivo viaja en el campo "file"; estos campos acompañan como form values.
type CreateDocumentoRequest struct {
	IDDescansoMedico string `form:"id_descansomedico"`
	Nombre           string `form:"nombre"`
}

// UpdateDocumentoRequest body para PATCH /documentos/:id (solo nombre visible).
type UpdateDocumentoRequest struct {
	Nombre *string `json:"nombre"`
	Estado *bool   `json:"estado"`
}

// DocumentoResponse representación de un adjunto.
type DocumentoResponse struct {
	ID               string    `json:"id"`
	IDDescansoMedico string    `json:"id_descansomedico"`
	Nombre           string    `json:"nombre"`
	NombreArchivo    string    `json:"nombre_archivo"`
	Ruta             string    `json:"ruta"`
	TipoContenido    string    `json:"tipo_contenido"`
	Tamanio          int64     `json:"tamanio"`
	Estado           bool      `json:"estado"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewDocumentoResponse convierte la entidad a su representación HTTP.
func NewDocumentoResponse(d *entity.Documento) DocumentoResponse {
	return DocumentoResponse{
		ID:               d.ID,
		IDDescansoMedico: d.IDDescansoMedico,
		Nombre:           d.Nombre,
		NombreArchivo:    d.NombreArchivo,
		Ruta:             d.Ruta,
		TipoContenido:    d.TipoContenido,
		Tamanio:          d.Tamanio,
		Estado:           d.Estado,
		CreatedAt:        d.CreatedAt,
	}
}

// NewDocumentoResponseList convierte un slice de entidades.
func NewDocumentoResponseList(dd []*entity.Documento) []DocumentoResponse {
	out := make([]DocumentoResponse, 0, len(dd))
	for _, d := range dd {
		out = append(out, NewDocumentoResponse(d))
	}
	return out
}
