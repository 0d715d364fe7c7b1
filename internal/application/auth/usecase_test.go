package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	"github.com/bsalazar/descansos-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) GetAll(context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) GetAllPaginado(context.Context, int, int, string) ([]*entity.Usuario, int64, error) {
	return nil, 0, nil
}
func (f *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}
func (f *fakeUsuarioRepo) GetByCorreo(_ context.Context, correo string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}
func (f *fakeUsuarioRepo) Update(context.Context, *entity.Usuario) error       { return nil }
func (f *fakeUsuarioRepo) UpdateClave(context.Context, string, string) error   { return nil }
func (f *fakeUsuarioRepo) UpdateEstado(context.Context, string, bool, string) error {
	return nil
}
func (f *fakeUsuarioRepo) SoftDelete(context.Context, string, string) error { return nil }

type fakeSesionRepo struct {
	sesiones map[string]*entity.Sesion
}

func (f *fakeSesionRepo) Create(_ context.Context, s *entity.Sesion) error {
	f.sesiones[s.ID] = s
	return nil
}
func (f *fakeSesionRepo) GetByID(_ context.Context, id string) (*entity.Sesion, error) {
	return f.sesiones[id], nil
}
func (f *fakeSesionRepo) Revocar(_ context.Context, id string) error {
	s, ok := f.sesiones[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.RevocadaEn == nil {
		now := time.Now()
		s.RevocadaEn = &now
	}
	return nil
}
func (f *fakeSesionRepo) EstaActiva(_ context.Context, id string) (bool, error) {
	s, ok := f.sesiones[id]
	if !ok {
		return false, nil
	}
	return s.Activa(time.Now()), nil
}

func nuevoEntorno(t *testing.T) (*UseCase, *fakeUsuarioRepo, *fakeSesionRepo) {
	t.Helper()
	usuarios := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	sesiones := &fakeSesionRepo{sesiones: map[string]*entity.Sesion{}}
	uc := NewUseCase(usuarios, sesiones, Options{
		Secret:     "secreto-de-test",
		Issuer:     "descansos-api",
		ExpMinutes: 60,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("ClaveCorrecta1!"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		ID:     "user-1",
		Nombre: "Berenice Salazar",
		Correo: "bsalazar@empresa.pe",
		Clave:  string(hash),
		Rol:    entity.RolAdmin,
	}
	u.Estado = true
	usuarios.usuarios[u.ID] = u

	return uc, usuarios, sesiones
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("credenciales correctas emiten token con sesion", func(t *testing.T) {
		uc, _, sesiones := nuevoEntorno(t)
		resp, err := uc.Login(ctx, dto.LoginRequest{Correo: "BSalazar@Empresa.pe", Clave: "ClaveCorrecta1!"})
		require.NoError(t, err)
		assert.Equal(t, "user-1", resp.Usuario.ID)

		userID, rol, sessionID, err := jwt.Parse("secreto-de-test", resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, entity.RolAdmin, rol)
		assert.Contains(t, sesiones.sesiones, sessionID)
	})

	t.Run("correo desconocido", func(t *testing.T) {
		uc, _, _ := nuevoEntorno(t)
		_, err := uc.Login(ctx, dto.LoginRequest{Correo: "nadie@empresa.pe", Clave: "x"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("clave incorrecta", func(t *testing.T) {
		uc, _, _ := nuevoEntorno(t)
		_, err := uc.Login(ctx, dto.LoginRequest{Correo: "bsalazar@empresa.pe", Clave: "equivocada"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("cuenta desactivada", func(t *testing.T) {
		uc, usuarios, _ := nuevoEntorno(t)
		usuarios.usuarios["user-1"].Estado = false
		_, err := uc.Login(ctx, dto.LoginRequest{Correo: "bsalazar@empresa.pe", Clave: "ClaveCorrecta1!"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc, _, sesiones := nuevoEntorno(t)

	resp, err := uc.Login(ctx, dto.LoginRequest{Correo: "bsalazar@empresa.pe", Clave: "ClaveCorrecta1!"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, resp.Token))

	_, _, sessionID, err := jwt.Parse("secreto-de-test", resp.Token)
	require.NoError(t, err)
	activa, err := sesiones.EstaActiva(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, activa)

	// Logout repetido no es error.
	assert.NoError(t, uc.Logout(ctx, resp.Token))

	t.Run("token invalido", func(t *testing.T) {
		assert.ErrorIs(t, uc.Logout(ctx, "no-es-un-jwt"), domain.ErrUnauthorized)
	})
}
