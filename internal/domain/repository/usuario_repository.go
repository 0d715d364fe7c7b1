package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	GetAll(ctx context.Context) ([]*entity.Usuario, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Usuario, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
	Create(ctx context.Context, u *entity.Usuario) error
	Update(ctx context.Context, u *entity.Usuario) error
	UpdateClave(ctx context.Context, id, claveHash string) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
