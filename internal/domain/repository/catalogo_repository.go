package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CatalogoRepository define el puerto de persistencia compartido por todas
// las tablas de referencia (países, cargos, sedes, áreas, tipos de documento,
// tipos de contingencia). Una sola implementación parametrizada por tabla
// sirve a todas; la implementación vive en infrastructure.
//
// Los métodos de lectura devuelven (nil, nil) cuando el registro no existe;
// el caso de uso lo traduce a domain.ErrNotFound.
type CatalogoRepository interface {
	GetAll(ctx context.Context) ([]*entity.Catalogo, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Catalogo, error)
	// GetAllPaginado devuelve la página pedida y el total de filas que
	// satisfacen el filtro (para el sobre de paginación).
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Catalogo, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Catalogo, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Catalogo, error)
	// ExistsNombreURL informa si otra fila activa (id != excludeID) ya usa el slug.
	ExistsNombreURL(ctx context.Context, nombreURL, excludeID string) (bool, error)
	Create(ctx context.Context, c *entity.Catalogo) error
	Update(ctx context.Context, c *entity.Catalogo) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
