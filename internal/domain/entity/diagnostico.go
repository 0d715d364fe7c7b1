package entity

// Diagnostico representa un diagnóstico CIE-10. El código y el nombre son
// únicos entre filas activas.
type Diagnostico struct {
	ID        string
	Codigo    string // código CIE-10, ej. "J06.9"
	Nombre    string
	NombreURL string
	Auditoria
}
