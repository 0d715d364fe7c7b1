// Package auth implementa login y logout con JWT y sesiones revocables.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/internal/domain/repository"
	"github.com/bsalazar/descansos-api/pkg/jwt"
)

// Options parámetros de emisión de tokens.
type Options struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	sesionRepo  repository.SesionRepository
	opts        Options
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, sesionRepo repository.SesionRepository, opts Options) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, sesionRepo: sesionRepo, opts: opts}
}

// Login verifica las credenciales, registra una sesión y devuelve el token.
// Correo desconocido y clave incorrecta devuelven errores distintos para que
// el handler los mapee (404 vs 401); una cuenta desactivada da 403.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	correo := strings.ToLower(strings.TrimSpace(req.Correo))
	if correo == "" || req.Clave == "" {
		return nil, domain.ErrUnauthorized
	}

	u, err := uc.usuarioRepo.GetByCorreo(ctx, correo)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(req.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Estado {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	sesion := &entity.Sesion{
		ID:        uuid.New().String(),
		IDUsuario: u.ID,
		ExpiraEn:  now.Add(time.Duration(uc.opts.ExpMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.sesionRepo.Create(ctx, sesion); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.opts.Secret, sesion.ID, u.ID, u.Rol, uc.opts.Issuer, uc.opts.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Usuario: dto.NewUsuarioResponse(u),
	}, nil
}

// Logout revoca la sesión del token. Un token ya revocado no es error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	_, _, sessionID, err := jwt.Parse(uc.opts.Secret, token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	return uc.sesionRepo.Revocar(ctx, sessionID)
}
