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

// fechaISO formato de las fechas en los payloads.
const fechaISO = "2006-01-02"

// PersonaUseCase casos de uso de personas.
type PersonaUseCase struct {
	repo repository.PersonaRepository
}

// NewPersonaUseCase construye el caso de uso.
func NewPersonaUseCase(repo repository.PersonaRepository) *PersonaUseCase {
	return &PersonaUseCase{repo: repo}
}

// GetAll lista personas; estado en nil trae todas las no eliminadas.
func (uc *PersonaUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.PersonaResponse, error) {
	var (
		items []*entity.Persona
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
	return dto.NewPersonaResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *PersonaUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.PersonaResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewPersonaResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene una persona por ID.
func (uc *PersonaUseCase) GetByID(ctx context.Context, id string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewPersonaResponse(p)
	return &resp, nil
}

// GetByNumeroDocumento busca una persona por su número de documento.
func (uc *PersonaUseCase) GetByNumeroDocumento(ctx context.Context, numero string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByNumeroDocumento(ctx, numero)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewPersonaResponse(p)
	return &resp, nil
}

// Crear valida, chequea duplicado de documento y persiste.
func (uc *PersonaUseCase) Crear(ctx context.Context, req dto.CreatePersonaRequest, userID string) (*dto.PersonaResponse, error) {
	p, err := armarPersona(req.PersonaPayload, userID)
	if err != nil {
		return nil, err
	}

	existente, err := uc.repo.GetByNumeroDocumento(ctx, p.NumeroDocumento)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: el número de documento ya está registrado", domain.ErrDuplicate)
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPersonaResponse(p)
	return &resp, nil
}

// armarPersona valida el payload y construye la entidad con auditoría. Lo usa
// también el alta transaccional de trabajadores sociales.
func armarPersona(in dto.PersonaPayload, userID string) (*entity.Persona, error) {
	numero := strings.TrimSpace(in.NumeroDocumento)
	if numero == "" {
		return nil, fmt.Errorf("%w: numero_documento es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Nombres) == "" {
		return nil, fmt.Errorf("%w: nombres es requerido", domain.ErrInvalidInput)
	}
	if in.IDTipoDocumento == "" {
		return nil, fmt.Errorf("%w: id_tipodocumento es requerido", domain.ErrInvalidInput)
	}

	var fechaNacimiento *time.Time
	if in.FechaNacimiento != "" {
		f, err := time.Parse(fechaISO, in.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_nacimiento inválida (formato 2006-01-02)", domain.ErrInvalidInput)
		}
		fechaNacimiento = &f
	}

	now := time.Now()
	p := &entity.Persona{
		ID:              uuid.New().String(),
		IDTipoDocumento: in.IDTipoDocumento,
		NumeroDocumento: numero,
		Nombres:         strings.TrimSpace(in.Nombres),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		FechaNacimiento: fechaNacimiento,
		Sexo:            in.Sexo,
		Direccion:       in.Direccion,
		Telefono:        in.Telefono,
		Correo:          in.Correo,
	}
	p.Estado = true
	p.UserCrea = nullable(userID)
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Actualizar edita la persona; un payload solo-estado va directo a UpdateEstado.
func (uc *PersonaUseCase) Actualizar(ctx context.Context, id string, req dto.UpdatePersonaRequest, userID string) (*dto.PersonaResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if req.NumeroDocumento != nil {
		numero := strings.TrimSpace(*req.NumeroDocumento)
		if numero == "" {
			return nil, fmt.Errorf("%w: numero_documento es requerido", domain.ErrInvalidInput)
		}
		if numero != p.NumeroDocumento {
			otro, err := uc.repo.GetByNumeroDocumento(ctx, numero)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, fmt.Errorf("%w: el número de documento ya está registrado", domain.ErrDuplicate)
			}
		}
		p.NumeroDocumento = numero
	}
	if req.IDTipoDocumento != nil {
		p.IDTipoDocumento = *req.IDTipoDocumento
	}
	if req.Nombres != nil {
		p.Nombres = strings.TrimSpace(*req.Nombres)
	}
	if req.ApellidoPaterno != nil {
		p.ApellidoPaterno = strings.TrimSpace(*req.ApellidoPaterno)
	}
	if req.ApellidoMaterno != nil {
		p.ApellidoMaterno = strings.TrimSpace(*req.ApellidoMaterno)
	}
	if req.FechaNacimiento != nil {
		if *req.FechaNacimiento == "" {
			p.FechaNacimiento = nil
		} else {
			f, err := time.Parse(fechaISO, *req.FechaNacimiento)
			if err != nil {
				return nil, fmt.Errorf("%w: fecha_nacimiento inválida (formato 2006-01-02)", domain.ErrInvalidInput)
			}
			p.FechaNacimiento = &f
		}
	}
	if req.Sexo != nil {
		p.Sexo = *req.Sexo
	}
	if req.Direccion != nil {
		p.Direccion = *req.Direccion
	}
	if req.Telefono != nil {
		p.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		p.Correo = *req.Correo
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	p.UserActualiza = nullable(userID)
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.NewPersonaResponse(p)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *PersonaUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca la persona como eliminada.
func (uc *PersonaUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
