package entity

// Roles de la aplicación.
const (
	RolAdmin     = "admin"
	RolAsistente = "asistente"
	RolConsulta  = "consulta"
)

// Usuario representa una cuenta de acceso al sistema. La clave se persiste
// hasheada con bcrypt; la clave temporal generada al crear la cuenta se envía
// por correo y nunca se guarda en claro.
type Usuario struct {
	ID        string
	IDPersona *string // opcional: vínculo con la persona del dominio
	Nombre    string
	Correo    string // único entre filas activas
	Clave     string // hash bcrypt
	Rol       string
	Auditoria
}
