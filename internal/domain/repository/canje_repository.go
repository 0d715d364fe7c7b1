package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CanjeRepository define el puerto de persistencia para Canje.
type CanjeRepository interface {
	GetAll(ctx context.Context) ([]*entity.Canje, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Canje, error)
	GetAllByDescanso(ctx context.Context, idDescanso string) ([]*entity.Canje, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Canje, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Canje, error)
	GetByNumeroExpediente(ctx context.Context, numero string) (*entity.Canje, error)
	Create(ctx context.Context, c *entity.Canje) error
	Update(ctx context.Context, c *entity.Canje) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
