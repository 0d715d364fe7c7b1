package entity

// RepresentanteLegal representa al apoderado de una empresa.
type RepresentanteLegal struct {
	ID              string
	IDEmpresa       string
	IDCargo         string
	IDTipoDocumento string
	NumeroDocumento string
	Nombres         string
	Apellidos       string
	Correo          string
	Telefono        string
	Auditoria

	// NombreCargo se completa en lecturas con JOIN a cargos; no se persiste.
	NombreCargo string
}
