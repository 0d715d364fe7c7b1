package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// DiagnosticoRepository define el puerto de persistencia para Diagnostico (CIE-10).
type DiagnosticoRepository interface {
	GetAll(ctx context.Context) ([]*entity.Diagnostico, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Diagnostico, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Diagnostico, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Diagnostico, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Diagnostico, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Diagnostico, error)
	ExistsNombreURL(ctx context.Context, nombreURL, excludeID string) (bool, error)
	Create(ctx context.Context, d *entity.Diagnostico) error
	Update(ctx context.Context, d *entity.Diagnostico) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
