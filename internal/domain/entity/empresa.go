package entity

// Empresa representa a un empleador registrado, con los datos del padrón SUNAT.
// RUC y razón social son únicos entre filas activas.
type Empresa struct {
	ID              string
	RUC             string
	RazonSocial     string
	NombreURL       string // slug de la razón social
	NombreComercial string
	Direccion       string
	Distrito        string
	Provincia       string
	Departamento    string
	EstadoSUNAT     string // ACTIVO, BAJA, SUSPENDIDO...
	CondicionSUNAT  string // HABIDO, NO HABIDO...
	Telefono        string
	Correo          string
	Auditoria

	// Representantes se carga solo en GetByID (eager load).
	Representantes []*RepresentanteLegal
}
