package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// TrabajadorSocialRepository define el puerto de persistencia para
// TrabajadorSocial. Create y SoftDelete tocan también la tabla personas,
// por lo que el caso de uso los ejecuta dentro de TxRunner.
type TrabajadorSocialRepository interface {
	GetAll(ctx context.Context) ([]*entity.TrabajadorSocial, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.TrabajadorSocial, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.TrabajadorSocial, int64, error)
	GetByID(ctx context.Context, id string) (*entity.TrabajadorSocial, error)
	GetByCodigoColegiatura(ctx context.Context, codigo string) (*entity.TrabajadorSocial, error)
	Create(ctx context.Context, t *entity.TrabajadorSocial) error
	Update(ctx context.Context, t *entity.TrabajadorSocial) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
