package entity

// Documento representa un adjunto de un descanso médico (certificado, CITT,
// informe). El archivo vive en disco; aquí solo los metadatos.
type Documento struct {
	ID               string
	IDDescansoMedico string
	Nombre           string // nombre visible
	NombreArchivo    string // nombre original del archivo subido
	Ruta             string // ruta relativa dentro del directorio de uploads
	TipoContenido    string // MIME type
	Tamanio          int64  // bytes
	Auditoria
}
