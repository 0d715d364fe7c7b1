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

// ReembolsoUseCase casos de uso de reembolsos.
type ReembolsoUseCase struct {
	repo      repository.ReembolsoRepository
	canjeRepo repository.CanjeRepository
}

// NewReembolsoUseCase construye el caso de uso.
func NewReembolsoUseCase(repo repository.ReembolsoRepository, canjeRepo repository.CanjeRepository) *ReembolsoUseCase {
	return &ReembolsoUseCase{repo: repo, canjeRepo: canjeRepo}
}

// GetAll lista reembolsos; estado en nil trae todos los no eliminados.
func (uc *ReembolsoUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.ReembolsoResponse, error) {
	var (
		items []*entity.Reembolso
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
	return dto.NewReembolsoResponseList(items), nil
}

// GetAllByCanje lista los reembolsos de un canje.
func (uc *ReembolsoUseCase) GetAllByCanje(ctx context.Context, idCanje string) ([]dto.ReembolsoResponse, error) {
	items, err := uc.repo.GetAllByCanje(ctx, idCanje)
	if err != nil {
		return nil, err
	}
	return dto.NewReembolsoResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *ReembolsoUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.ReembolsoResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewReembolsoResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un reembolso por ID.
func (uc *ReembolsoUseCase) GetByID(ctx context.Context, id string) (*dto.ReembolsoResponse, error) {
	re, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewReembolsoResponse(re)
	return &resp, nil
}

// Crear valida, deriva dia/mes/anio y persiste.
func (uc *ReembolsoUseCase) Crear(ctx context.Context, req dto.CreateReembolsoRequest, userID string) (*dto.ReembolsoResponse, error) {
	numero := strings.TrimSpace(req.NumeroExpediente)
	if numero == "" {
		return nil, fmt.Errorf("%w: numero_expediente es requerido", domain.ErrInvalidInput)
	}
	if req.IDCanje == "" {
		return nil, fmt.Errorf("%w: id_canje es requerido", domain.ErrInvalidInput)
	}
	if req.Monto.IsNegative() {
		return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
	}

	canje, err := uc.canjeRepo.GetByID(ctx, req.IDCanje)
	if err != nil {
		return nil, err
	}
	if canje == nil {
		return nil, fmt.Errorf("%w: el canje no existe", domain.ErrNotFound)
	}

	if existente, err := uc.repo.GetByNumeroExpediente(ctx, numero); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("%w: el número de expediente ya está registrado", domain.ErrDuplicate)
	}

	fecha, dia, mes, anio, err := parsearFechaTramite(req.Fecha)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	re := &entity.Reembolso{
		ID:               uuid.New().String(),
		IDCanje:          req.IDCanje,
		NumeroExpediente: numero,
		Fecha:            fecha,
		Dia:              dia,
		Mes:              mes,
		Anio:             anio,
		Monto:            req.Monto,
		EstadoRegistro:   req.EstadoRegistro,
		Observacion:      req.Observacion,
	}
	re.Estado = true
	re.UserCrea = nullable(userID)
	re.CreatedAt = now
	re.UpdatedAt = now

	if err := uc.repo.Create(ctx, re); err != nil {
		return nil, err
	}
	resp := dto.NewReembolsoResponse(re)
	return &resp, nil
}

// Actualizar edita el reembolso; un payload solo-estado va a UpdateEstado.
func (uc *ReembolsoUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateReembolsoRequest, userID string) (*dto.ReembolsoResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	re, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return nil, domain.ErrNotFound
	}

	if req.IDCanje != nil {
		re.IDCanje = *req.IDCanje
	}
	if req.NumeroExpediente != nil {
		numero := strings.TrimSpace(*req.NumeroExpediente)
		if numero == "" {
			return nil, fmt.Errorf("%w: numero_expediente es requerido", domain.ErrInvalidInput)
		}
		if numero != re.NumeroExpediente {
			otro, err := uc.repo.GetByNumeroExpediente(ctx, numero)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, fmt.Errorf("%w: el número de expediente ya está registrado", domain.ErrDuplicate)
			}
		}
		re.NumeroExpediente = numero
	}
	if req.Fecha != nil {
		fecha, dia, mes, anio, err := parsearFechaTramite(*req.Fecha)
		if err != nil {
			return nil, err
		}
		re.Fecha, re.Dia, re.Mes, re.Anio = fecha, dia, mes, anio
	}
	if req.Monto != nil {
		if req.Monto.IsNegative() {
			return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
		}
		re.Monto = *req.Monto
	}
	if req.EstadoRegistro != nil {
		re.EstadoRegistro = *req.EstadoRegistro
	}
	if req.Observacion != nil {
		re.Observacion = *req.Observacion
	}
	if req.Estado != nil {
		re.Estado = *req.Estado
	}
	re.UserActualiza = nullable(userID)
	re.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, re); err != nil {
		return nil, err
	}
	resp := dto.NewReembolsoResponse(re)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *ReembolsoUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el reembolso como eliminado.
func (uc *ReembolsoUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
