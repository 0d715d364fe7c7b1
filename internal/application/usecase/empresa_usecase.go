package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
	"github.com/bsalazar/descansos-api/pkg/slug"
)

// ConsultorRUC consulta el padrón SUNAT (adaptador en infrastructure/sunat).
type ConsultorRUC interface {
	ConsultarRUC(ctx context.Context, ruc string) (*entity.DatosRUC, error)
}

// CacheRUC cache opcional de consultas (adaptador en infrastructure/cache).
// nil desactiva el cache.
type CacheRUC interface {
	Obtener(ctx context.Context, ruc string) (*entity.DatosRUC, error)
	Guardar(ctx context.Context, datos *entity.DatosRUC) error
}

// EmpresaUseCase casos de uso de empresas, incluida la consulta al padrón.
type EmpresaUseCase struct {
	repo      repository.EmpresaRepository
	consultor ConsultorRUC
	cache     CacheRUC
}

// NewEmpresaUseCase construye el caso de uso. cache puede ser nil.
func NewEmpresaUseCase(repo repository.EmpresaRepository, consultor ConsultorRUC, cache CacheRUC) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, consultor: consultor, cache: cache}
}

// GetAll lista empresas; estado en nil trae todas las no eliminadas.
func (uc *EmpresaUseCase) GetAll(ctx context.Context, estado *bool) ([]dto.EmpresaResponse, error) {
	var (
		items []*entity.Empresa
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
	return dto.NewEmpresaResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *EmpresaUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.EmpresaResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewEmpresaResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene una empresa con sus representantes legales.
func (uc *EmpresaUseCase) GetByID(ctx context.Context, id string) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewEmpresaResponse(e)
	return &resp, nil
}

// GetByRazonSocial busca una empresa por razón social exacta.
func (uc *EmpresaUseCase) GetByRazonSocial(ctx context.Context, razonSocial string) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.GetByRazonSocial(ctx, razonSocial)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewEmpresaResponse(e)
	return &resp, nil
}

// ConsultarRUC consulta el padrón SUNAT con cache Redis opcional. Si el RUC
// aún no está registrado localmente, lo persiste con los datos del padrón.
func (uc *EmpresaUseCase) ConsultarRUC(ctx context.Context, ruc string, userID string) (*dto.EmpresaResponse, error) {
	ruc = strings.TrimSpace(ruc)
	if len(ruc) != 11 {
		return nil, fmt.Errorf("%w: el RUC debe tener 11 dígitos", domain.ErrInvalidInput)
	}

	// Ya registrada: se devuelve la fila local.
	if e, err := uc.repo.GetByRUC(ctx, ruc); err != nil {
		return nil, err
	} else if e != nil {
		resp := dto.NewEmpresaResponse(e)
		return &resp, nil
	}

	datos, err := uc.buscarPadron(ctx, ruc)
	if err != nil {
		if errors.Is(err, domain.ErrRUCNoEncontrado) {
			return nil, fmt.Errorf("%w: no se encontró información para este RUC", domain.ErrNotFound)
		}
		return nil, err
	}

	e := uc.armarEmpresa(datos, userID)
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewEmpresaResponse(e)
	return &resp, nil
}

func (uc *EmpresaUseCase) buscarPadron(ctx context.Context, ruc string) (*entity.DatosRUC, error) {
	if uc.cache != nil {
		if datos, err := uc.cache.Obtener(ctx, ruc); err != nil {
			// Cache caído no bloquea la consulta.
			log.Warn().Err(err).Str("ruc", ruc).Msg("cache RUC no disponible")
		} else if datos != nil {
			return datos, nil
		}
	}

	datos, err := uc.consultor.ConsultarRUC(ctx, ruc)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Guardar(ctx, datos); err != nil {
			log.Warn().Err(err).Str("ruc", ruc).Msg("no se pudo cachear la consulta RUC")
		}
	}
	return datos, nil
}

func (uc *EmpresaUseCase) armarEmpresa(datos *entity.DatosRUC, userID string) *entity.Empresa {
	now := time.Now()
	e := &entity.Empresa{
		ID:              uuid.New().String(),
		RUC:             datos.RUC,
		RazonSocial:     datos.RazonSocial,
		NombreURL:       slug.Convertir(datos.RazonSocial),
		NombreComercial: datos.NombreComercial,
		Direccion:       datos.Direccion,
		Distrito:        datos.Distrito,
		Provincia:       datos.Provincia,
		Departamento:    datos.Departamento,
		EstadoSUNAT:     datos.EstadoSUNAT,
		CondicionSUNAT:  datos.CondicionSUNAT,
	}
	e.Estado = true
	e.UserCrea = nullable(userID)
	e.CreatedAt = now
	e.UpdatedAt = now
	return e
}

// Crear valida, chequea RUC/razón social duplicados y persiste.
func (uc *EmpresaUseCase) Crear(ctx context.Context, req dto.CreateEmpresaRequest, userID string) (*dto.EmpresaResponse, error) {
	ruc := strings.TrimSpace(req.RUC)
	razonSocial := strings.TrimSpace(req.RazonSocial)
	if ruc == "" {
		return nil, fmt.Errorf("%w: ruc es requerido", domain.ErrInvalidInput)
	}
	if razonSocial == "" {
		return nil, fmt.Errorf("%w: razon_social es requerido", domain.ErrInvalidInput)
	}

	if err := uc.validarDuplicados(ctx, ruc, razonSocial, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &entity.Empresa{
		ID:              uuid.New().String(),
		RUC:             ruc,
		RazonSocial:     razonSocial,
		NombreURL:       slug.Convertir(razonSocial),
		NombreComercial: req.NombreComercial,
		Direccion:       req.Direccion,
		Distrito:        req.Distrito,
		Provincia:       req.Provincia,
		Departamento:    req.Departamento,
		EstadoSUNAT:     req.EstadoSUNAT,
		CondicionSUNAT:  req.CondicionSUNAT,
		Telefono:        req.Telefono,
		Correo:          req.Correo,
	}
	e.Estado = true
	e.UserCrea = nullable(userID)
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewEmpresaResponse(e)
	return &resp, nil
}

// validarDuplicados chequea RUC y razón social en una sola consulta y arma el
// mensaje nombrando los campos en conflicto.
func (uc *EmpresaUseCase) validarDuplicados(ctx context.Context, ruc, razonSocial, excludeID string) error {
	campos, err := uc.repo.CamposRegistrados(ctx, ruc, razonSocial, excludeID)
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

// Actualizar edita la empresa; un payload solo-estado va directo a UpdateEstado.
func (uc *EmpresaUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateEmpresaRequest, userID string) (*dto.EmpresaResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	if req.RUC != nil {
		e.RUC = strings.TrimSpace(*req.RUC)
	}
	if req.RazonSocial != nil {
		razonSocial := strings.TrimSpace(*req.RazonSocial)
		if razonSocial == "" {
			return nil, fmt.Errorf("%w: razon_social es requerido", domain.ErrInvalidInput)
		}
		e.RazonSocial = razonSocial
		e.NombreURL = slug.Convertir(razonSocial)
	}
	if req.RUC != nil || req.RazonSocial != nil {
		if err := uc.validarDuplicados(ctx, e.RUC, e.RazonSocial, id); err != nil {
			return nil, err
		}
	}
	if req.NombreComercial != nil {
		e.NombreComercial = *req.NombreComercial
	}
	if req.Direccion != nil {
		e.Direccion = *req.Direccion
	}
	if req.Distrito != nil {
		e.Distrito = *req.Distrito
	}
	if req.Provincia != nil {
		e.Provincia = *req.Provincia
	}
	if req.Departamento != nil {
		e.Departamento = *req.Departamento
	}
	if req.EstadoSUNAT != nil {
		e.EstadoSUNAT = *req.EstadoSUNAT
	}
	if req.CondicionSUNAT != nil {
		e.CondicionSUNAT = *req.CondicionSUNAT
	}
	if req.Telefono != nil {
		e.Telefono = *req.Telefono
	}
	if req.Correo != nil {
		e.Correo = *req.Correo
	}
	if req.Estado != nil {
		e.Estado = *req.Estado
	}
	e.UserActualiza = nullable(userID)
	e.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := dto.NewEmpresaResponse(e)
	return &resp, nil
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *EmpresaUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca la empresa como eliminada.
func (uc *EmpresaUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
