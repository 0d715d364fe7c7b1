package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
	"github.com/bsalazar/descansos-api/pkg/slug"
)

// CatalogoUseCase casos de uso de una tabla de referencia. Una instancia por
// catálogo (países, cargos, sedes, áreas, tipos de documento, tipos de
// contingencia), todas sobre el mismo repositorio genérico.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso sobre el repositorio dado.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// GetAll lista las filas; estado en nil trae todas las no eliminadas.
func (uc *CatalogoUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.CatalogoResponse, error) {
	var (
		items []*entity.Catalogo
		err   error
	)
	if estado != nil {
		items, err = uc.repo.GetAllByEstado(ctx, *estado)
	} else {
		items, err = uc.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return dto.NewCatalogoResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *CatalogoUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.CatalogoResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewCatalogoResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene una fila; ErrNotFound si no existe o está eliminada.
func (uc *CatalogoUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCatalogoResponse(c)
	return &resp, nil
}

// GetByNombre obtiene una fila por nombre exacto.
func (uc *CatalogoUseCase) GetByNombre(ctx context.Context, nombre string) (*dto.CatalogoResponse, error) {
	c, err := uc.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCatalogoResponse(c)
	return &resp, nil
}

// Crear valida, deriva el slug, chequea duplicados y persiste.
func (uc *CatalogoUseCase) Crear(ctx context.Context, req dto.CreateCatalogoRequest, userID string) (*dto.CatalogoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}

	nombreURL := slug.Convertir(nombre)
	existe, err := uc.repo.ExistsNombreURL(ctx, nombreURL, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, fmt.Errorf("%w: ya existe un registro con ese nombre", domain.ErrDuplicate)
	}

	now := time.Now()
	c := &entity.Catalogo{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		NombreURL: nombreURL,
	}
	c.Estado = true
	c.UserCrea = nullable(userID)
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCatalogoResponse(c)
	return &resp, nil
}

// Actualizar edita la fila; un payload solo-estado va directo a UpdateEstado.
func (uc *CatalogoUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateCatalogoRequest, userID string) (*dto.CatalogoResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
		}
		nombreURL := slug.Convertir(nombre)
		existe, err := uc.repo.ExistsNombreURL(ctx, nombreURL, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, fmt.Errorf("%w: ya existe un registro con ese nombre", domain.ErrDuplicate)
		}
		c.Nombre = nombre
		c.NombreURL = nombreURL
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	c.UserActualiza = nullable(userID)
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCatalogoResponse(c)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *CatalogoUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca la fila como eliminada.
func (uc *CatalogoUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
