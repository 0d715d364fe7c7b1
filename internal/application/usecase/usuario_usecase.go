package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
	"github.com/bsalazar/descansos-api/pkg/password"
)

// Mailer envía las credenciales temporales al usuario nuevo (adaptador en
// infrastructure/email). Puede ser nil si el SMTP no está configurado.
type Mailer interface {
	EnviarCredenciales(to, nombre, clave string) error
}

// UsuarioUseCase casos de uso de cuentas de usuario.
type UsuarioUseCase struct {
	repo   repository.UsuarioRepository
	mailer Mailer
}

// NewUsuarioUseCase construye el caso de uso. mailer puede ser nil.
func NewUsuarioUseCase(repo repository.UsuarioRepository, mailer Mailer) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, mailer: mailer}
}

// GetAll lista los usuarios activos.
func (uc *UsuarioUseCase) GetAll(ctx context.Context) ([]dto.UsuarioResponse, error) {
	items, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUsuarioResponseList(items), nil
}

// GetPaginado lista una página con filtro opcional.
func (uc *UsuarioUseCase) GetPaginado(ctx context.Context, req dto.PageRequest) ([]dto.UsuarioResponse, dto.Pagination, error) {
	req.DefaultPage()
	items, total, err := uc.repo.GetAllPaginado(ctx, req.Page, req.Limit, req.Filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.NewUsuarioResponseList(items), dto.NewPagination(req.Page, req.Limit, total), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.NewUsuarioResponse(u)
	return &resp, nil
}

func rolValido(rol string) bool {
	switch rol {
	case entity.RolAdmin, entity.RolAsistente, entity.RolConsulta:
		return true
	}
	return false
}

// Crear registra la cuenta con una clave temporal generada por el sistema y
// la envía por correo en segundo plano. Un fallo del correo no deshace el
// alta: solo se registra en el log.
func (uc *UsuarioUseCase) Crear(ctx context.Context, req dto.CreateUsuarioRequest, userID string) (*dto.UsuarioResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	correo := strings.ToLower(strings.TrimSpace(req.Correo))
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if correo == "" || !strings.Contains(correo, "@") {
		return nil, fmt.Errorf("%w: correo inválido", domain.ErrInvalidInput)
	}
	rol := req.Rol
	if rol == "" {
		rol = entity.RolConsulta
	}
	if !rolValido(rol) {
		return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
	}

	if existente, err := uc.repo.GetByCorreo(ctx, correo); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrCorreoRegistrado
	}

	clave, err := password.GenerarTemporal()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear clave: %w", err)
	}

	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		IDPersona: req.IDPersona,
		Nombre:    nombre,
		Correo:    correo,
		Clave:     string(hash),
		Rol:       rol,
	}
	u.Estado = true
	u.UserCrea = nullable(userID)
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.enviarCredenciales(u.Correo, u.Nombre, clave)

	resp := dto.NewUsuarioResponse(u)
	return &resp, nil
}

// enviarCredenciales despacha el correo en una goroutine para no bloquear la
// respuesta HTTP en el servidor SMTP.
func (uc *UsuarioUseCase) enviarCredenciales(correo, nombre, clave string) {
	if uc.mailer == nil {
		log.Warn().Str("correo", correo).Msg("SMTP no configurado, no se envían credenciales")
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("pánico enviando credenciales")
			}
		}()
		if err := uc.mailer.EnviarCredenciales(correo, nombre, clave); err != nil {
			log.Error().Err(err).Str("correo", correo).Msg("no se pudo enviar el correo de credenciales")
		}
	}()
}

// Actualizar edita la cuenta; un payload solo-estado va a UpdateEstado.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id string, req dto.UpdateUsuarioRequest, userID string) (*dto.UsuarioResponse, error) {
	if req.SoloEstado() {
		if err := uc.repo.UpdateEstado(ctx, id, *req.Estado, userID); err != nil {
			return nil, err
		}
		return uc.GetByID(ctx, id)
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if req.IDPersona != nil {
		u.IDPersona = req.IDPersona
	}
	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
		}
		u.Nombre = nombre
	}
	if req.Correo != nil {
		correo := strings.ToLower(strings.TrimSpace(*req.Correo))
		if correo == "" || !strings.Contains(correo, "@") {
			return nil, fmt.Errorf("%w: correo inválido", domain.ErrInvalidInput)
		}
		if correo != u.Correo {
			otro, err := uc.repo.GetByCorreo(ctx, correo)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != id {
				return nil, domain.ErrCorreoRegistrado
			}
		}
		u.Correo = correo
	}
	if req.Rol != nil {
		if !rolValido(*req.Rol) {
			return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
		}
		u.Rol = *req.Rol
	}
	if req.Estado != nil {
		u.Estado = *req.Estado
	}
	u.UserActualiza = nullable(userID)
	u.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.NewUsuarioResponse(u)
	return &resp, nil
}

// CambiarClave verifica la clave actual y guarda el hash de la nueva.
func (uc *UsuarioUseCase) CambiarClave(ctx context.Context, id string, req dto.CambiarClaveRequest) error {
	if len(req.ClaveNueva) < 8 {
		return fmt.Errorf("%w: la clave nueva debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(req.ClaveActual)); err != nil {
		return fmt.Errorf("%w: la clave actual no coincide", domain.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.ClaveNueva), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear clave: %w", err)
	}
	return uc.repo.UpdateClave(ctx, id, string(hash))
}

// ActualizarEstado cambia solo la bandera de activo.
func (uc *UsuarioUseCase) ActualizarEstado(ctx context.Context, id string, estado bool, userID string) error {
	return uc.repo.UpdateEstado(ctx, id, estado, userID)
}

// Eliminar marca la cuenta como eliminada.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, id, userID string) error {
	return uc.repo.SoftDelete(ctx, id, userID)
}
