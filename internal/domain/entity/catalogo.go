package entity

// Catalogo es la forma compartida de las tablas de referencia
// (países, cargos, sedes, áreas, tipos de documento, tipos de contingencia):
// un nombre visible único y su slug derivado.
type Catalogo struct {
	ID        string
	Nombre    string
	NombreURL string
	Auditoria
}
