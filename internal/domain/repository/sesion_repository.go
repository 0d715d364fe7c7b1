package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// SesionRepository define el puerto de persistencia de sesiones (jti de los
// tokens emitidos, para poder revocarlas en logout).
type SesionRepository interface {
	Create(ctx context.Context, s *entity.Sesion) error
	GetByID(ctx context.Context, id string) (*entity.Sesion, error)
	Revocar(ctx context.Context, id string) error
	// EstaActiva informa si la sesión existe, no está revocada y no expiró.
	EstaActiva(ctx context.Context, id string) (bool, error)
}
