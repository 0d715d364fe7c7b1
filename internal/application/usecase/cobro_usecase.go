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

// CobroUseCase casos de uso de cobros.
type CobroUseCase struct {
	repo          repository.CobroRepository
	reembolsoRepo repository.ReembolsoRepository
}

// NewCobroUseCase construye el caso de uso.
func NewCobroUseCase(repo repository.CobroRepository, reembolsoRepo repository.ReembolsoRepository) *CobroUseCase {
	return &CobroUseCase{repo: repo, reembolsoRepo: reembolsoRepo}
}

// GetAll lista cobros; estado en nil trae todos los no eliminados.
func (uc *CobroUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.CobroResponse, error) {
	var (
		items []*entity.Cobro
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
	return dto.NewCobroResponseList(items), nil
}

// GetAllByReembolso lista los cobros de un reembolso.
func (uc *CobroUseCase) GetAllByReembolso(ctx context.Context, idReembolso string) ([]dto.CobroResponse, error) {
	items, err := uc.repo.GetAllByReembolso(ctx, idReembolso)
	if err != nil {
		return nil, err
	}
	return dto.NewCobroResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *CobroUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.CobroResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewCobroResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un cobro por ID.
func (uc *CobroUseCase) GetByID(ctx context.Context, id string) (*dto.CobroResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCobroResponse(c)
	return &resp, nil
}

// validarCamposCobro chequea cheque y voucher en una sola consulta y arma el
// mensaje nombrando los campos en conflicto.
func (uc *CobroUseCase) validarCamposCobro(ctx context.Context, cheque, voucher, excludeID string) error {
	campos, err := uc.repo.CamposRegistrados(ctx, cheque, voucher, excludeID)
	if err != nil {
		return err
	}
	if len(campos) == 0 {
		return nil
	}
	nombres := make([]string, 0, len(campos))
	for _, c := range campos {
		nombres = append(nombres, string(c))
	}
	return fmt.Errorf("%w: ya registrado: %s", domain.ErrDuplicate, strings.Join(nombres, ", "))
}

// Crear valida (cheque y voucher únicos entre filas activas), deriva
// dia/mes/anio y persiste.
func (uc *CobroUseCase) Crear(ctx context.Context, req dto.CreateCobroRequest, userID string) (*dto.CobroResponse, error) {
	cheque := strings.TrimSpace(req.NumeroCheque)
	voucher := strings.TrimSpace(req.NumeroVoucher)
	if cheque == "" {
		return nil, fmt.Errorf("%w: numero_cheque es requerido", domain.ErrInvalidInput)
	}
	if voucher == "" {
		return nil, fmt.Errorf("%w: numero_voucher es requerido", domain.ErrInvalidInput)
	}
	if req.IDReembolso == "" {
		return nil, fmt.Errorf("%w: id_reembolso es requerido", domain.ErrInvalidInput)
	}
	if req.Monto.IsNegative() {
		return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
	}

	reembolso, err := uc.reembolsoRepo.GetByID(ctx, req.IDReembolso)
	if err != nil {
		return nil, err
	}
	if reembolso == nil {
		return nil, fmt.Errorf("%w: el reembolso no existe", domain.ErrNotFound)
	}

	if err := uc.validarCamposCobro(ctx, cheque, voucher, ""); err != nil {
		return nil, err
	}

	fecha, dia, mes, anio, err := parsearFechaTramite(req.Fecha)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &entity.Cobro{
		ID:             uuid.New().String(),
		IDReembolso:    req.IDReembolso,
		NumeroCheque:   cheque,
		NumeroVoucher:  voucher,
		Fecha:          fecha,
		Dia:            dia,
		Mes:            mes,
		Anio:           anio,
		Monto:          req.Monto,
		EstadoRegistro: req.EstadoRegistro,
		Observacion:    req.Observacion,
	}
	c.Estado = true
	c.UserCrea = nullable(userID)
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.NewCobroResponse(c)
	return &resp, nil
}

// Actualizar edita el cobro; un payload solo-estado va a UpdateEstado.
func (uc *CobroUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateCobroRequest, userID string) (*dto.CobroResponse, error) {
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

	if req.IDReembolso != nil {
		c.IDReembolso = *req.IDReembolso
	}
	if req.NumeroCheque != nil {
		cheque := strings.TrimSpace(*req.NumeroCheque)
		if cheque == "" {
			return nil, fmt.Errorf("%w: numero_cheque es requerido", domain.ErrInvalidInput)
		}
		c.NumeroCheque = cheque
	}
	if req.NumeroVoucher != nil {
		voucher := strings.TrimSpace(*req.NumeroVoucher)
		if voucher == "" {
			return nil, fmt.Errorf("%w: numero_voucher es requerido", domain.ErrInvalidInput)
		}
		c.NumeroVoucher = voucher
	}
	if req.NumeroCheque != nil || req.NumeroVoucher != nil {
		if err := uc.validarCamposCobro(ctx, c.NumeroCheque, c.NumeroVoucher, id); err != nil {
			return nil, err
		}
	}
	if req.Fecha != nil {
		fecha, dia, mes, anio, err := parsearFechaTramite(*req.Fecha)
		if err != nil {
			return nil, err
		}
		c.Fecha, c.Dia, c.Mes, c.Anio = fecha, dia, mes, anio
	}
	if req.Monto != nil {
		if req.Monto.IsNegative() {
			return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
		}
		c.Monto = *req.Monto
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
	resp := dto.NewCobroResponse(c)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *CobroUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el cobro como eliminado.
func (uc *CobroUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
