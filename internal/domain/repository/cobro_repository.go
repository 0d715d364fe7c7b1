package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CobroRepository define el puerto de persistencia para Cobro.
type CobroRepository interface {
	GetAll(ctx context.Context) ([]*entity.Cobro, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Cobro, error)
	GetAllByReembolso(ctx context.Context, idReembolso string) ([]*entity.Cobro, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Cobro, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Cobro, error)
	// CamposRegistrados devuelve los campos (cheque, voucher) ya usados por
	// otra fila activa distinta de excludeID (validación OR multi-campo).
	CamposRegistrados(ctx context.Context, numeroCheque, numeroVoucher, excludeID string) ([]CampoDuplicado, error)
	Create(ctx context.Context, c *entity.Cobro) error
	Update(ctx context.Context, c *entity.Cobro) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
