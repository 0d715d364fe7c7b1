package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrCorreoRegistrado  = errors.New("el correo ya está registrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrSesionRevocada    = errors.New("sesión revocada")
	ErrRUCNoEncontrado   = errors.New("RUC no encontrado en el padrón")
)
