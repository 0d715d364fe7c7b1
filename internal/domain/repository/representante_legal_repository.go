package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// RepresentanteLegalRepository define el puerto de persistencia para
// RepresentanteLegal.
type RepresentanteLegalRepository interface {
	GetAll(ctx context.Context) ([]*entity.RepresentanteLegal, error)
	GetAllByEmpresa(ctx context.Context, idEmpresa string) ([]*entity.RepresentanteLegal, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.RepresentanteLegal, int64, error)
	GetByID(ctx context.Context, id string) (*entity.RepresentanteLegal, error)
	Create(ctx context.Context, r *entity.RepresentanteLegal) error
	Update(ctx context.Context, r *entity.RepresentanteLegal) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
