package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// fakeUsuarioRepo repositorio en memoria para los tests del caso de uso.
type fakeUsuarioRepo struct {
	filas map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{filas: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) GetAll(_ context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.filas {
		if u.DeletedAt == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsuarioRepo) GetAllPaginado(ctx context.Context, _, _ int, _ string) ([]*entity.Usuario, int64, error) {
	all, _ := f.GetAll(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	u, ok := f.filas[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUsuarioRepo) GetByCorreo(_ context.Context, correo string) (*entity.Usuario, error) {
	for _, u := range f.filas {
		if u.Correo == correo && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.filas[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	if _, ok := f.filas[u.ID]; !ok {
		return domain.ErrNotFound
	}
	f.filas[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) UpdateClave(_ context.Context, id, claveHash string) error {
	u, ok := f.filas[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrNotFound
	}
	u.Clave = claveHash
	return nil
}

func (f *fakeUsuarioRepo) UpdateEstado(_ context.Context, id string, estado bool, _ string) error {
	u, ok := f.filas[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrNotFound
	}
	u.Estado = estado
	return nil
}

func (f *fakeUsuarioRepo) SoftDelete(_ context.Context, id, _ string) error {
	u, ok := f.filas[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := u.UpdatedAt
	u.DeletedAt = &now
	return nil
}

// fakeMailer captura el envío asíncrono de credenciales.
type fakeMailer struct {
	enviado chan string // clave enviada
	err     error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{enviado: make(chan string, 1)}
}

func (f *fakeMailer) EnviarCredenciales(_, _, clave string) error {
	f.enviado <- clave
	return f.err
}

func esperarClave(t *testing.T, m *fakeMailer) string {
	t.Helper()
	select {
	case clave := <-m.enviado:
		return clave
	case <-time.After(2 * time.Second):
		t.Fatal("el correo de credenciales nunca se envió")
		return ""
	}
}

func TestUsuarioCrear(t *testing.T) {
	ctx := context.Background()

	t.Run("genera clave temporal y la envia por correo", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		mailer := newFakeMailer()
		uc := NewUsuarioUseCase(repo, mailer)

		resp, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
			Nombre: "Berenice Salazar",
			Correo: "BSalazar@Empresa.pe",
			Rol:    entity.RolAsistente,
		}, "admin-1")
		require.NoError(t, err)
		assert.Equal(t, "bsalazar@empresa.pe", resp.Correo) // normalizado
		assert.Equal(t, entity.RolAsistente, resp.Rol)
		assert.True(t, resp.Estado)

		clave := esperarClave(t, mailer)
		assert.NotEmpty(t, clave)

		// La fila guarda el hash, nunca la clave en claro.
		u := repo.filas[resp.ID]
		assert.NotEqual(t, clave, u.Clave)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(clave)))
	})

	t.Run("fallo del correo no deshace el alta", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		mailer := newFakeMailer()
		mailer.err = errors.New("smtp caído")
		uc := NewUsuarioUseCase(repo, mailer)

		resp, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
			Nombre: "Juan Pérez",
			Correo: "jperez@empresa.pe",
		}, "admin-1")
		require.NoError(t, err)
		esperarClave(t, mailer)
		assert.Contains(t, repo.filas, resp.ID)
	})

	t.Run("sin mailer el alta igual funciona", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		uc := NewUsuarioUseCase(repo, nil)

		resp, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
			Nombre: "Ana Torres",
			Correo: "atorres@empresa.pe",
		}, "admin-1")
		require.NoError(t, err)
		assert.Contains(t, repo.filas, resp.ID)
	})

	t.Run("rol por defecto es consulta", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		uc := NewUsuarioUseCase(repo, nil)

		resp, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
			Nombre: "Luis Quispe",
			Correo: "lquispe@empresa.pe",
		}, "admin-1")
		require.NoError(t, err)
		assert.Equal(t, entity.RolConsulta, resp.Rol)
	})

	t.Run("rol desconocido rechazado", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		uc := NewUsuarioUseCase(repo, nil)

		_, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
			Nombre: "X",
			Correo: "x@empresa.pe",
			Rol:    "superadmin",
		}, "admin-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("correo duplicado", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		uc := NewUsuarioUseCase(repo, nil)

		_, err := uc.Crear(ctx, dto.CreateUsuarioRequest{Nombre: "A", Correo: "dup@empresa.pe"}, "admin-1")
		require.NoError(t, err)
		_, err = uc.Crear(ctx, dto.CreateUsuarioRequest{Nombre: "B", Correo: "DUP@empresa.pe"}, "admin-1")
		assert.ErrorIs(t, err, domain.ErrCorreoRegistrado)
	})
}

func TestUsuarioCambiarClave(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsuarioRepo()
	mailer := newFakeMailer()
	uc := NewUsuarioUseCase(repo, mailer)

	resp, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
		Nombre: "Carla Ruiz",
		Correo: "cruiz@empresa.pe",
	}, "admin-1")
	require.NoError(t, err)
	claveTemporal := esperarClave(t, mailer)

	t.Run("clave actual incorrecta", func(t *testing.T) {
		err := uc.CambiarClave(ctx, resp.ID, dto.CambiarClaveRequest{
			ClaveActual: "no-es-la-clave",
			ClaveNueva:  "NuevaClave99!",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("clave nueva corta", func(t *testing.T) {
		err := uc.CambiarClave(ctx, resp.ID, dto.CambiarClaveRequest{
			ClaveActual: claveTemporal,
			ClaveNueva:  "corta",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cambio correcto", func(t *testing.T) {
		err := uc.CambiarClave(ctx, resp.ID, dto.CambiarClaveRequest{
			ClaveActual: claveTemporal,
			ClaveNueva:  "NuevaClave99!",
		})
		require.NoError(t, err)
		u := repo.filas[resp.ID]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte("NuevaClave99!")))
	})
}

func TestUsuarioActualizar(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsuarioRepo()
	uc := NewUsuarioUseCase(repo, nil)

	creado, err := uc.Crear(ctx, dto.CreateUsuarioRequest{
		Nombre: "Pedro Soto",
		Correo: "psoto@empresa.pe",
	}, "admin-1")
	require.NoError(t, err)

	t.Run("solo estado", func(t *testing.T) {
		estado := false
		resp, err := uc.Actualizar(ctx, creado.ID, dto.UpdateUsuarioRequest{Estado: &estado}, "admin-2")
		require.NoError(t, err)
		assert.False(t, resp.Estado)
		assert.Equal(t, "Pedro Soto", resp.Nombre)
	})

	t.Run("cambiar rol", func(t *testing.T) {
		rol := entity.RolAdmin
		resp, err := uc.Actualizar(ctx, creado.ID, dto.UpdateUsuarioRequest{Rol: &rol}, "admin-2")
		require.NoError(t, err)
		assert.Equal(t, entity.RolAdmin, resp.Rol)
	})

	t.Run("correo en uso por otro", func(t *testing.T) {
		otro, err := uc.Crear(ctx, dto.CreateUsuarioRequest{Nombre: "Otro", Correo: "otro@empresa.pe"}, "admin-1")
		require.NoError(t, err)
		correo := "psoto@empresa.pe"
		_, err = uc.Actualizar(ctx, otro.ID, dto.UpdateUsuarioRequest{Correo: &correo}, "admin-2")
		assert.ErrorIs(t, err, domain.ErrCorreoRegistrado)
	})

	t.Run("id desconocido", func(t *testing.T) {
		nombre := "Nadie"
		_, err := uc.Actualizar(ctx, "no-existe", dto.UpdateUsuarioRequest{Nombre: &nombre}, "admin-2")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
