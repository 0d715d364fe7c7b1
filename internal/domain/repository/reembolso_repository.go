package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// ReembolsoRepository define el puerto de persistencia para Reembolso.
type ReembolsoRepository interface {
	GetAll(ctx context.Context) ([]*entity.Reembolso, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Reembolso, error)
	GetAllByCanje(ctx context.Context, idCanje string) ([]*entity.Reembolso, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Reembolso, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Reembolso, error)
	GetByNumeroExpediente(ctx context.Context, numero string) (*entity.Reembolso, error)
	Create(ctx context.Context, r *entity.Reembolso) error
	Update(ctx context.Context, r *entity.Reembolso) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
