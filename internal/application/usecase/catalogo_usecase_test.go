package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// fakeCatalogoRepo repositorio en memoria para los tests del caso de uso.
type fakeCatalogoRepo struct {
	filas map[string]*entity.Catalogo
}

func newFakeCatalogoRepo() *fakeCatalogoRepo {
	return &fakeCatalogoRepo{filas: map[string]*entity.Catalogo{}}
}

func (f *fakeCatalogoRepo) GetAll(_ context.Context) ([]*entity.Catalogo, error) {
	var out []*entity.Catalogo
	for _, c := range f.filas {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalogoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Catalogo, error) {
	all, _ := f.GetAll(ctx)
	var out []*entity.Catalogo
	for _, c := range all {
		if c.Estado == estado {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalogoRepo) GetAllPaginado(ctx context.Context, page, limit int, _ string) ([]*entity.Catalogo, int64, error) {
	all, _ := f.GetAll(ctx)
	return all, int64(len(all)), nil
}

func (f *fakeCatalogoRepo) GetByID(_ context.Context, id string) (*entity.Catalogo, error) {
	c, ok := f.filas[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCatalogoRepo) GetByNombre(_ context.Context, nombre string) (*entity.Catalogo, error) {
	for _, c := range f.filas {
		if c.Nombre == nombre && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogoRepo) ExistsNombreURL(_ context.Context, nombreURL, excludeID string) (bool, error) {
	for _, c := range f.filas {
		if c.NombreURL == nombreURL && c.DeletedAt == nil && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalogoRepo) Create(_ context.Context, c *entity.Catalogo) error {
	f.filas[c.ID] = c
	return nil
}

func (f *fakeCatalogoRepo) Update(_ context.Context, c *entity.Catalogo) error {
	if _, ok := f.filas[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.filas[c.ID] = c
	return nil
}

func (f *fakeCatalogoRepo) UpdateEstado(_ context.Context, id string, estado bool, _ string) error {
	c, ok := f.filas[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrNotFound
	}
	c.Estado = estado
	return nil
}

func (f *fakeCatalogoRepo) SoftDelete(ctx context.Context, id, _ string) error {
	c, ok := f.filas[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := c.UpdatedAt
	c.DeletedAt = &now
	return nil
}

func TestCatalogoCrear(t *testing.T) {
	repo := newFakeCatalogoRepo()
	uc := NewCatalogoUseCase(repo)
	ctx := context.Background()

	t.Run("deriva slug y estampa auditoria", func(t *testing.T) {
		resp, err := uc.Crear(ctx, dto.CreateCatalogoRequest{Nombre: "MÉDICO OCUPACIONAL"}, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "MÉDICO OCUPACIONAL", resp.Nombre)
		assert.Equal(t, "medico-ocupacional", resp.NombreURL)
		assert.True(t, resp.Estado)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("nombre vacio rechazado sin escribir", func(t *testing.T) {
		antes := len(repo.filas)
		_, err := uc.Crear(ctx, dto.CreateCatalogoRequest{Nombre: "   "}, "user-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, repo.filas, antes)
	})

	t.Run("nombre duplicado via slug", func(t *testing.T) {
		_, err := uc.Crear(ctx, dto.CreateCatalogoRequest{Nombre: "Médico Ocupacional"}, "user-1")
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestCatalogoActualizar(t *testing.T) {
	repo := newFakeCatalogoRepo()
	uc := NewCatalogoUseCase(repo)
	ctx := context.Background()

	creado, err := uc.Crear(ctx, dto.CreateCatalogoRequest{Nombre: "Lima"}, "user-1")
	require.NoError(t, err)

	t.Run("solo estado va a UpdateEstado", func(t *testing.T) {
		estado := false
		resp, err := uc.Actualizar(ctx, creado.ID, dto.UpdateCatalogoRequest{Estado: &estado}, "user-2")
		require.NoError(t, err)
		assert.False(t, resp.Estado)
		assert.Equal(t, "Lima", resp.Nombre) // el resto queda intacto
	})

	t.Run("renombrar recalcula slug", func(t *testing.T) {
		nombre := "Arequipa"
		resp, err := uc.Actualizar(ctx, creado.ID, dto.UpdateCatalogoRequest{Nombre: &nombre}, "user-2")
		require.NoError(t, err)
		assert.Equal(t, "arequipa", resp.NombreURL)
	})

	t.Run("id desconocido", func(t *testing.T) {
		nombre := "Cusco"
		_, err := uc.Actualizar(ctx, "no-existe", dto.UpdateCatalogoRequest{Nombre: &nombre}, "user-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogoEliminar(t *testing.T) {
	repo := newFakeCatalogoRepo()
	uc := NewCatalogoUseCase(repo)
	ctx := context.Background()

	creado, err := uc.Crear(ctx, dto.CreateCatalogoRequest{Nombre: "Tacna"}, "user-1")
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(ctx, creado.ID, "user-1"))

	// Oculto de lecturas pero la fila sigue en el repositorio.
	_, err = uc.GetByID(ctx, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, repo.filas, creado.ID)

	// Eliminar dos veces: 404.
	assert.ErrorIs(t, uc.Eliminar(ctx, creado.ID, "user-1"), domain.ErrNotFound)
}
