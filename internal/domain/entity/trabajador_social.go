package entity

// TrabajadorSocial representa al personal de servicio social que gestiona
// descansos médicos. Su alta crea también la Persona asociada, en una sola
// transacción.
type TrabajadorSocial struct {
	ID                 string
	IDPersona          string
	IDSede             string
	CodigoColegiatura  string // único entre filas activas
	Auditoria

	// Persona se completa en lecturas; no es columna de la tabla.
	Persona *Persona
}
