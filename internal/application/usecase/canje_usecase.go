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

// CanjeUseCase casos de uso de canjes ante EsSalud.
type CanjeUseCase struct {
	repo         repository.CanjeRepository
	descansoRepo repository.DescansoMedicoRepository
}

// NewCanjeUseCase construye el caso de uso.
func NewCanjeUseCase(repo repository.CanjeRepository, descansoRepo repository.DescansoMedicoRepository) *CanjeUseCase {
	return &CanjeUseCase{repo: repo, descansoRepo: descansoRepo}
}

// GetAll lista canjes; estado en nil trae todos los no eliminados.
func (uc *CanjeUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.CanjeResponse, error) {
	var (
		items []*entity.Canje
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
	return dto.NewCanjeResponseList(items), nil
}

// GetAllByDescanso lista los canjes de un descanso médico.
func (uc *CanjeUseCase) GetAllByDescanso(ctx context.Context, idDescanso string) ([]dto.CanjeResponse, error) {
	items, err := uc.repo.GetAllByDescanso(ctx, idDescanso)
	if err != nil {
		return nil, err
	}
	return dto.NewCanjeResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *CanjeUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.CanjeResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewCanjeResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un canje por ID.
func (uc *CanjeUseCase) GetByID(ctx context.Context, id string) (*dto.CanjeResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCanjeResponse(c)
	return &resp, nil
}

// parsearFechaTramite valida la fecha y devuelve sus partes dia/mes/anio.
func parsearFechaTramite(fecha string) (time.Time, int, int, int, error) {
	var zero time.Time
	if fecha == "" {
		return zero, 0, 0, 0, fmt.Errorf("%w: fecha es requerida", domain.ErrInvalidInput)
	}
	f, err := time.Parse(fechaISO, fecha)
	if err != nil {
		return zero, 0, 0, 0, fmt.Errorf("%w: fecha inválida (formato 2006-01-02)", domain.ErrInvalidInput)
	}
	return f, f.Day(), int(f.Month()), f.Year(), nil
}

// Crear valida, deriva dia/mes/anio de la fecha y persiste.
func (uc *CanjeUseCase) Crear(ctx context.Context, req dto.CreateCanjeRequest, userID string) (*dto.CanjeResponse, error) {
	numero := strings.TrimSpace(req.NumeroExpediente)
	if numero == "" {
		return nil, fmt.Errorf("%w: numero_expediente es requerido", domain.ErrInvalidInput)
	}
	if req.IDDescansoMedico == "" {
		return nil, fmt.Errorf("%w: id_descansomedico es requerido", domain.ErrInvalidInput)
	}

	descanso, err := uc.descansoRepo.GetByID(ctx, req.IDDescansoMedico)
	if err != nil {
		return nil, err
	}
	if descanso == nil {
		return nil, fmt.Errorf("%w: el descanso médico no existe", domain.ErrNotFound)
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
	c := &entity.Canje{
		ID:               uuid.New().String(),
		IDDescansoMedico: req.IDDescansoMedico,
		NumeroExpediente: numero,
		Fecha:            fecha,
		Dia:              dia,
		Mes:              mes,
		Anio:             anio,
		EstadoRegistro:   req.EstadoRegistro,
		Observacion:      req.Observacion,
	}
	c.Estado = true
	c.UserCrea = nullable(userID)
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCanjeResponse(c)
	return &resp, nil
}

// Actualizar edita el canje; un payload solo-estado va a UpdateEstado. Si
// cambia la fecha, dia/mes/anio se recalculan.
func (uc *CanjeUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateCanjeRequest, userID string) (*dto.CanjeResponse, error) {
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

	if req.IDDescansoMedico != nil {
		c.IDDescansoMedico = *req.IDDescansoMedico
	}
	if req.NumeroExpediente != nil {
		numero := strings.TrimSpace(*req.NumeroExpediente)
		if numero == "" {
			return nil, fmt.Errorf("%w: numero_expediente es requerido", domain.ErrInvalidInput)
		}
		if numero != c.NumeroExpediente {
			otro, err := uc.repo.GetByNumeroExpediente(ctx, numero)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, fmt.Errorf("%w: el número de expediente ya está registrado", domain.ErrDuplicate)
			}
		}
		c.NumeroExpediente = numero
	}
	if req.Fecha != nil {
		fecha, dia, mes, anio, err := parsearFechaTramite(*req.Fecha)
		if err != nil {
			return nil, err
		}
		c.Fecha, c.Dia, c.Mes, c.Anio = fecha, dia, mes, anio
	}
	if req.EstadoRegistro != nil {
		c.EstadoRegistro = *req.EstadoRegistro
	}
	if req.Observacion != nil {
		c.Observacion = *req.Observacion
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	c.UserActualiza = nullable(userID)
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCanjeResponse(c)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *CanjeUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el canje como eliminado.
func (uc *CanjeUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
