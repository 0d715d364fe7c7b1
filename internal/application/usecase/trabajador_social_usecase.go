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

// TrabajadorTx ejecuta el alta de persona + trabajador en una transacción
// (implementado por postgres.TxRunner).
type TrabajadorTx interface {
	RunTrabajadorSocial(ctx context.Context, fn func(
		personaRepo repository.PersonaRepository,
		trabajadorRepo repository.TrabajadorSocialRepository,
	) error) error
}

// TrabajadorSocialUseCase casos de uso de trabajadores sociales.
type TrabajadorSocialUseCase struct {
	repo        repository.TrabajadorSocialRepository
	personaRepo repository.PersonaRepository
	tx          TrabajadorTx
}

// NewTrabajadorSocialUseCase construye el caso de uso.
func NewTrabajadorSocialUseCase(repo repository.TrabajadorSocialRepository, personaRepo repository.PersonaRepository, tx TrabajadorTx) *TrabajadorSocialUseCase {
	return &TrabajadorSocialUseCase{repo: repo, personaRepo: personaRepo, tx: tx}
}

// GetAll lista trabajadores; estado en nil trae todos los no eliminados.
func (uc *TrabajadorSocialUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.TrabajadorSocialResponse, error) {
	var (
		items []*entity.TrabajadorSocial
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
	return dto.NewTrabajadorSocialResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *TrabajadorSocialUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.TrabajadorSocialResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewTrabajadorSocialResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un trabajador con su persona.
func (uc *TrabajadorSocialUseCase) GetByID(ctx context.Context, id string) (*dto.TrabajadorSocialResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewTrabajadorSocialResponse(t)
	return &resp, nil
}

// Crear da de alta persona + trabajador social en UNA transacción: si la
// segunda escritura falla, la persona no queda huérfana.
func (uc *TrabajadorSocialUseCase) Crear(ctx context.Context, req dto.CreateTrabajadorSocialRequest, userID string) (*dto.TrabajadorSocialResponse, error) {
	codigo := strings.TrimSpace(req.CodigoColegiatura)
	if codigo == "" {
		return nil, fmt.Errorf("%w: codigo_colegiatura es requerido", domain.ErrInvalidInput)
	}
	if req.IDSede == "" {
		return nil, fmt.Errorf("%w: id_sede es requerido", domain.ErrInvalidInput)
	}

	p, err := armarPersona(req.Persona, userID)
	if err != nil {
		return nil, err
	}

	// Pre-chequeos fuera de la transacción; el índice único cubre la carrera.
	if existente, err := uc.personaRepo.GetByNumeroDocumento(ctx, p.NumeroDocumento); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("%w: el número de documento ya está registrado", domain.ErrDuplicate)
	}
	if existente, err := uc.repo.GetByCodigoColegiatura(ctx, codigo); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("%w: el código de colegiatura ya está registrado", domain.ErrDuplicate)
	}

	now := time.Now()
	t := &entity.TrabajadorSocial{
		ID:                uuid.New().String(),
		IDPersona:         p.ID,
		IDSede:            req.IDSede,
		CodigoColegiatura: codigo,
	}
	t.Estado = true
	t.UserCrea = nullable(userID)
	t.CreatedAt = now
	t.UpdatedAt = now

	err = uc.tx.RunTrabajadorSocial(ctx, func(personaRepo repository.PersonaRepository, trabajadorRepo repository.TrabajadorSocialRepository) error {
		if err := personaRepo.Create(ctx, p); err != nil {
			return err
		}
		return trabajadorRepo.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	t.Persona = p
	resp := dto.NewTrabajadorSocialResponse(t)
	return &resp, nil
}

// Actualizar edita sede/colegiatura; un payload solo-estado va a UpdateEstado.
func (uc *TrabajadorSocialUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateTrabajadorSocialRequest, userID string) (*dto.TrabajadorSocialResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if req.IDSede != nil {
		t.IDSede = *req.IDSede
	}
	if req.CodigoColegiatura != nil {
		codigo := strings.TrimSpace(*req.CodigoColegiatura)
		if codigo == "" {
			return nil, fmt.Errorf("%w: codigo_colegiatura es requerido", domain.ErrInvalidInput)
		}
		if codigo != t.CodigoColegiatura {
			otro, err := uc.repo.GetByCodigoColegiatura(ctx, codigo)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, fmt.Errorf("%w: el código de colegiatura ya está registrado", domain.ErrDuplicate)
			}
		}
		t.CodigoColegiatura = codigo
	}
	if req.Estado != nil {
		t.Estado = *req.Estado
	}
	t.UserActualiza = nullable(userID)
	t.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := dto.NewTrabajadorSocialResponse(t)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *TrabajadorSocialUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca el trabajador como eliminado. La persona sigue activa (puede
// tener descansos médicos propios).
func (uc *TrabajadorSocialUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
