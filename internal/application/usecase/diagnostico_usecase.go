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

// DiagnosticoUseCase casos de uso de diagnósticos CIE-10.
type DiagnosticoUseCase struct {
	repo repository.DiagnosticoRepository
}

// NewDiagnosticoUseCase construye el caso de uso.
func NewDiagnosticoUseCase(repo repository.DiagnosticoRepository) *DiagnosticoUseCase {
	return &DiagnosticoUseCase{repo: repo}
}

// GetAll lista diagnósticos; estado en nil trae todos los no eliminados.
func (uc *DiagnosticoUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.DiagnosticoResponse, error) {
	var (
		items []*entity.Diagnostico
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
	return dto.NewDiagnosticoResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *DiagnosticoUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.DiagnosticoResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewDiagnosticoResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un diagnóstico por ID.
func (uc *DiagnosticoUseCase) GetByID(ctx context.Context, id string) (*dto.DiagnosticoResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewDiagnosticoResponse(d)
	return &resp, nil
}

// GetByCodigo busca un diagnóstico por código CIE-10 exacto.
func (uc *DiagnosticoUseCase) GetByCodigo(ctx context.Context, codigo string) (*dto.DiagnosticoResponse, error) {
	d, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewDiagnosticoResponse(d)
	return &resp, nil
}

// Crear valida, deriva el slug, chequea código y nombre duplicados y persiste.
// El código se normaliza a mayúsculas (convención CIE-10).
func (uc *DiagnosticoUseCase) Crear(ctx context.Context, req dto.CreateDiagnosticoRequest, userID string) (*dto.DiagnosticoResponse, error) {
	codigo := strings.ToUpper(strings.TrimSpace(req.Codigo))
	nombre := strings.TrimSpace(req.Nombre)
	if codigo == "" {
		return nil, fmt.Errorf("%w: codigo es requerido", domain.ErrInvalidInput)
	}
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}

	if existente, err := uc.repo.GetByCodigo(ctx, codigo); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("%w: el código ya está registrado", domain.ErrDuplicate)
	}

	nombreURL := slug.Convertir(nombre)
	if existe, err := uc.repo.ExistsNombreURL(ctx, nombreURL, ""); err != nil {
		return nil, err
	} else if existe {
		return nil, fmt.Errorf("%w: ya existe un diagnóstico con ese nombre", domain.ErrDuplicate)
	}

	now := time.Now()
	d := &entity.Diagnostico{
		ID:        uuid.New().String(),
		Codigo:    codigo,
		Nombre:    nombre,
		NombreURL: nombreURL,
	}
	d.Estado = true
	d.UserCrea = nullable(userID)
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NewDiagnosticoResponse(d)
	return &resp, nil
}

// Actualizar edita el diagnóstico; un payload solo-estado va a UpdateEstado.
func (uc *DiagnosticoUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateDiagnosticoRequest, userID string) (*dto.DiagnosticoResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	if req.Codigo != nil {
		codigo := strings.ToUpper(strings.TrimSpace(*req.Codigo))
		if codigo == "" {
			return nil, fmt.Errorf("%w: codigo es requerido", domain.ErrInvalidInput)
		}
		if codigo != d.Codigo {
			otro, err := uc.repo.GetByCodigo(ctx, codigo)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, fmt.Errorf("%w: el código ya está registrado", domain.ErrDuplicate)
			}
		}
		d.Codigo = codigo
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
			return nil, fmt.Errorf("%w: ya existe un diagnóstico con ese nombre", domain.ErrDuplicate)
		}
		d.Nombre = nombre
		d.NombreURL = nombreURL
	}
	if req.Estado != nil {
		d.Estado = *req.Estado
	}
	d.UserActualiza = nullable(userID)
	d.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NewDiagnosticoResponse(d)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *DiagnosticoUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el diagnóstico como eliminado.
func (uc *DiagnosticoUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
