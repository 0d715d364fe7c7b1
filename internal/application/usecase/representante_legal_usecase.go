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
)

// RepresentanteLegalUseCase casos de uso de representantes legales.
type RepresentanteLegalUseCase struct {
	repo        repository.RepresentanteLegalRepository
	empresaRepo repository.EmpresaRepository
}

// NewRepresentanteLegalUseCase construye el caso de uso.
func NewRepresentanteLegalUseCase(repo repository.RepresentanteLegalRepository, empresaRepo repository.EmpresaRepository) *RepresentanteLegalUseCase {
	return &RepresentanteLegalUseCase{repo: repo, empresaRepo: empresaRepo}
}

// GetAll lista todos los representantes no eliminados.
func (uc *RepresentanteLegalUseCase) GetAll(ctx context.Context) ([]dto.RepresentanteLegalResponse, error) {
	items, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRepresentanteLegalResponseList(items), nil
}

// GetAllByEmpresa lista los representantes de una empresa.
func (uc *RepresentanteLegalUseCase) GetAllByEmpresa(ctx context.Context, idEmpresa string) ([]dto.RepresentanteLegalResponse, error) {
	items, err := uc.repo.GetAllByEmpresa(ctx, idEmpresa)
	if err != nil {
		return nil, err
	}
	return dto.NewRepresentanteLegalResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *RepresentanteLegalUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.RepresentanteLegalResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewRepresentanteLegalResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un representante por ID.
func (uc *RepresentanteLegalUseCase) GetByID(ctx context.Context, id string) (*dto.RepresentanteLegalResponse, error) {
	rl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rl == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewRepresentanteLegalResponse(rl)
	return &resp, nil
}

// Crear valida (la empresa debe existir) y persiste.
func (uc *RepresentanteLegalUseCase) Crear(ctx context.Context, req dto.CreateRepresentanteRequest, userID string) (*dto.RepresentanteLegalResponse, error) {
	if req.IDEmpresa == "" {
		return nil, fmt.Errorf("%w: id_empresa es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Nombres) == "" {
		return nil, fmt.Errorf("%w: nombres es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.NumeroDocumento) == "" {
		return nil, fmt.Errorf("%w: numero_documento es requerido", domain.ErrInvalidInput)
	}

	empresa, err := uc.empresaRepo.GetByID(ctx, req.IDEmpresa)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, fmt.Errorf("%w: la empresa no existe", domain.ErrNotFound)
	}

	now := time.Now()
	rl := &entity.RepresentanteLegal{
		ID:              uuid.New().String(),
		IDEmpresa:       req.IDEmpresa,
		IDCargo:         req.IDCargo,
		IDTipoDocumento: req.IDTipoDocumento,
		NumeroDocumento: strings.TrimSpace(req.NumeroDocumento),
		Nombres:         strings.TrimSpace(req.Nombres),
		Apellidos:       strings.TrimSpace(req.Apellidos),
		Correo:          req.Correo,
		Telefono:        req.Telefono,
	}
	rl.Estado = true
	rl.UserCrea = nullable(userID)
	rl.CreatedAt = now
	rl.UpdatedAt = now

	if err := uc.repo.Create(ctx, rl); err != nil {
		return nil, err
	}
	resp := dto.NewRepresentanteLegalResponse(rl)
	return &resp, nil
}

// Actualizar edita el representante; un payload solo-estado va a UpdateEstado.
func (uc *RepresentanteLegalUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateRepresentanteRequest, userID string) (*dto.RepresentanteLegalResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	rl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rl == nil {
		return nil, domain.ErrNotFound
	}

	if req.IDEmpresa != nil {
		rl.IDEmpresa = *req.IDEmpresa
	}
	if req.IDCargo != nil {
		rl.IDCargo = *req.IDCargo
	}
	if req.IDTipoDocumento != nil {
		rl.IDTipoDocumento = *req.IDTipoDocumento
	}
	if req.NumeroDocumento != nil {
		numero := strings.TrimSpace(*req.NumeroDocumento)
		if numero == "" {
			return nil, fmt.Errorf("%w: numero_documento es requerido", domain.ErrInvalidInput)
		}
		rl.NumeroDocumento = numero
	}
	if req.Nombres != nil {
		rl.Nombres = strings.TrimSpace(*req.Nombres)
	}
	if req.Apellidos != nil {
		rl.Apellidos = strings.TrimSpace(*req.Apellidos)
	}
	if req.Correo != nil {
		rl.Correo = *req.Correo
	}
	if req.Telefono != nil {
		rl.Telefono = *req.Telefono
	}
	if req.Estado != nil {
		rl.Estado = *req.Estado
	}
	rl.UserActualiza = nullable(userID)
	rl.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, rl); err != nil {
		return nil, err
	}
	resp := dto.NewRepresentanteLegalResponse(rl)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *RepresentanteLegalUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el representante como eliminado.
func (uc *RepresentanteLegalUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
