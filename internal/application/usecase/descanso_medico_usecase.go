package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

// GeneradorConstancia genera el PDF de constancia (adaptador en
// infrastructure/pdf).
type GeneradorConstancia interface {
	GenerarConstancia(ctx context.Context, det *entity.DescansoMedicoDetalle) ([]byte, error)
}

// DescansoMedicoUseCase casos de uso de descansos médicos.
type DescansoMedicoUseCase struct {
	repo repository.DescansoMedicoRepository
	pdf  GeneradorConstancia
}

// NewDescansoMedicoUseCase construye el caso de uso.
func NewDescansoMedicoUseCase(repo repository.DescansoMedicoRepository, pdf GeneradorConstancia) *DescansoMedicoUseCase {
	return &DescansoMedicoUseCase{repo: repo, pdf: pdf}
}

// GetAll lista descansos; estado en nil trae todos los no eliminados.
func (uc *DescansoMedicoUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.DescansoResponse, error) {
	var (
		items []*entity.DescansoMedico
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
	return dto.NewDescansoResponseList(items), nil
}

// GetAllByPersona lista el historial de descansos de una persona.
func (uc *DescansoMedicoUseCase) GetAllByPersona(ctx context.Context, idPersona string) ([]dto.DescansoResponse, error) {
	items, err := uc.repo.GetAllByPersona(ctx, idPersona)
	if err != nil {
		return nil, err
	}
	return dto.NewDescansoResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *DescansoMedicoUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.DescansoResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewDescansoResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene el detalle enriquecido de un descanso.
func (uc *DescansoMedicoUseCase) GetByID(ctx context.Context, id string) (*dto.DescansoDetalleResponse, error) {
	det, err := uc.repo.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewDescansoDetalleResponse(det)
	return &resp, nil
}

// Crear valida fechas, deriva total_dias si falta y persiste.
func (uc *DescansoMedicoUseCase) Crear(ctx context.Context, req dto.CreateDescansoRequest, userID string) (*dto.DescansoResponse, error) {
	if req.IDPersona == "" {
		return nil, fmt.Errorf("%w: id_persona es requerido", domain.ErrInvalidInput)
	}
	if req.IDEmpresa == "" {
		return nil, fmt.Errorf("%w: id_empresa es requerido", domain.ErrInvalidInput)
	}
	if req.IDDiagnostico == "" {
		return nil, fmt.Errorf("%w: id_diagnostico es requerido", domain.ErrInvalidInput)
	}
	if req.IDTipoContingencia == "" {
		return nil, fmt.Errorf("%w: id_tipocontingencia es requerido", domain.ErrInvalidInput)
	}

	inicio, fin, dias, err := parsearPeriodo(req.FechaInicio, req.FechaFin, req.TotalDias)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	d := &entity.DescansoMedico{
		ID:                 uuid.New().String(),
		IDPersona:          req.IDPersona,
		IDEmpresa:          req.IDEmpresa,
		IDDiagnostico:      req.IDDiagnostico,
		IDTipoContingencia: req.IDTipoContingencia,
		FechaInicio:        inicio,
		FechaFin:           fin,
		TotalDias:          dias,
		Observacion:        req.Observacion,
	}
	d.Estado = true
	d.UserCrea = nullable(userID)
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NewDescansoResponse(d)
	return &resp, nil
}

// parsearPeriodo valida el rango de fechas. totalDias en cero se deriva como
// días calendario inclusivos (inicio == fin ⇒ 1 día).
func parsearPeriodo(fechaInicio, fechaFin string, totalDias int) (time.Time, time.Time, int, error) {
	var zero time.Time
	if fechaInicio == "" || fechaFin == "" {
		return zero, zero, 0, fmt.Errorf("%w: fecha_inicio y fecha_fin son requeridos", domain.ErrInvalidInput)
	}
	inicio, err := time.Parse(fechaISO, fechaInicio)
	if err != nil {
		return zero, zero, 0, fmt.Errorf("%w: fecha_inicio inválida (formato 2006-01-02)", domain.ErrInvalidInput)
	}
	fin, err := time.Parse(fechaISO, fechaFin)
	if err != nil {
		return zero, zero, 0, fmt.Errorf("%w: fecha_fin inválida (formato 2006-01-02)", domain.ErrInvalidInput)
	}
	if fin.Before(inicio) {
		return zero, zero, 0, fmt.Errorf("%w: fecha_fin no puede ser anterior a fecha_inicio", domain.ErrInvalidInput)
	}
	if totalDias <= 0 {
		totalDias = int(fin.Sub(inicio).Hours()/24) + 1
	}
	return inicio, fin, totalDias, nil
}

// Actualizar edita el descanso; un payload solo-estado va a UpdateEstado.
func (uc *DescansoMedicoUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateDescansoRequest, userID string) (*dto.DescansoResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		d, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, domain.ErrNotFound
		}
		resp := dto.NewDescansoResponse(d)
		return &resp, nil
	}

	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}

	if req.IDPersona != nil {
		d.IDPersona = *req.IDPersona
	}
	if req.IDEmpresa != nil {
		d.IDEmpresa = *req.IDEmpresa
	}
	if req.IDDiagnostico != nil {
		d.IDDiagnostico = *req.IDDiagnostico
	}
	if req.IDTipoContingencia != nil {
		d.IDTipoContingencia = *req.IDTipoContingencia
	}
	if req.FechaInicio != nil || req.FechaFin != nil {
		fechaInicio := d.FechaInicio.Format(fechaISO)
		fechaFin := d.FechaFin.Format(fechaISO)
		if req.FechaInicio != nil {
			fechaInicio = *req.FechaInicio
		}
		if req.FechaFin != nil {
			fechaFin = *req.FechaFin
		}
		dias := 0
		if req.TotalDias != nil {
			dias = *req.TotalDias
		}
		inicio, fin, total, err := parsearPeriodo(fechaInicio, fechaFin, dias)
		if err != nil {
			return nil, err
		}
		d.FechaInicio = inicio
		d.FechaFin = fin
		d.TotalDias = total
	} else if req.TotalDias != nil {
		d.TotalDias = *req.TotalDias
	}
	if req.Observacion != nil {
		d.Observacion = *req.Observacion
	}
	if req.Estado != nil {
		d.Estado = *req.Estado
	}
	d.UserActualiza = nullable(userID)
	d.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.NewDescansoResponse(d)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *DescansoMedicoUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el descanso como eliminado.
func (uc *DescansoMedicoUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}

// Constancia genera el PDF de constancia del descanso.
func (uc *DescansoMedicoUseCase) Constancia(ctx context.Context, id string) ([]byte, error) {
	det, err := uc.repo.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerarConstancia(ctx, det)
}
