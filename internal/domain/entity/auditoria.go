package entity

import "time"

// Auditoria agrupa las columnas de auditoría comunes a todas las tablas:
// quién creó/actualizó/eliminó el registro, si es de sistema (sembrado),
// si está activo y el tombstone de borrado lógico.
type Auditoria struct {
	UserCrea      *string
	UserActualiza *string
	UserElimina   *string
	Sistema       bool
	Estado        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // no-nulo marca borrado lógico; las filas nunca se purgan
}
