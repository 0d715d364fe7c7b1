package repository

import (
	"context"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// CampoDuplicado identifica qué campo provocó un conflicto de unicidad
// multi-campo (validación OR del sistema original).
type CampoDuplicado string

const (
	CampoRUC           CampoDuplicado = "ruc"
	CampoRazonSocial   CampoDuplicado = "razón social"
	CampoNumeroCheque  CampoDuplicado = "número de cheque"
	CampoNumeroVoucher CampoDuplicado = "número de voucher"
)

// EmpresaRepository define el puerto de persistencia para Empresa.
type EmpresaRepository interface {
	GetAll(ctx context.Context) ([]*entity.Empresa, error)
	GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Empresa, error)
	GetAllPaginado(ctx context.Context, page, limit int, filter string) ([]*entity.Empresa, int64, error)
	// GetByID carga además los representantes legales con su cargo.
	GetByID(ctx context.Context, id string) (*entity.Empresa, error)
	GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error)
	GetByRazonSocial(ctx context.Context, razonSocial string) (*entity.Empresa, error)
	// CamposRegistrados devuelve los campos (ruc, razón social) ya usados por
	// otra fila activa distinta de excludeID. Vacío = sin conflicto.
	CamposRegistrados(ctx context.Context, ruc, razonSocial, excludeID string) ([]CampoDuplicado, error)
	Create(ctx context.Context, e *entity.Empresa) error
	Update(ctx context.Context, e *entity.Empresa) error
	UpdateEstado(ctx context.Context, id string, estado bool, userID string) error
	SoftDelete(ctx context.Context, id, userID string) error
}
