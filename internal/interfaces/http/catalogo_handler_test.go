package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsalazar/descansos-api/internal/application/usecase"
	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
	apphttp "github.com/bsalazar/descansos-api/internal/interfaces/http"
)

// fakeCatalogoRepo repositorio en memoria para probar el handler de punta a
// punta sin base de datos.
type fakeCatalogoRepo struct {
	filas map[string]*entity.Catalogo
}

func (f *fakeCatalogoRepo) GetAll(_ context.Context) ([]*entity.Catalogo, error) {
	out := []*entity.Catalogo{}
	for _, c := range f.filas {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalogoRepo) GetAllByEstado(ctx context.Context, estado bool) ([]*entity.Catalogo, error) {
	all, _ := f.GetAll(ctx)
	out := []*entity.Catalogo{}
	for _, c := range all {
		if c.Estado == estado {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalogoRepo) GetAllPaginado(ctx context.Context, _, _ int, _ string) ([]*entity.Catalogo, int64, error) {
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

func (f *fakeCatalogoRepo) SoftDelete(_ context.Context, id, _ string) error {
	c, ok := f.filas[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := c.UpdatedAt
	c.DeletedAt = &now
	return nil
}

// appCatalogo monta el handler de sedes sobre el fake, sin middleware de auth.
func appCatalogo() (*fiber.App, *fakeCatalogoRepo) {
	repo := &fakeCatalogoRepo{filas: map[string]*entity.Catalogo{}}
	uc := usecase.NewCatalogoUseCase(repo)
	app := fiber.New()
	apphttp.NewCatalogoHandler(uc).Rutas(app.Group("/sedes"))
	return app, repo
}

type envelope struct {
	Result  bool            `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Status  int             `json:"status"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCatalogoHandlerCreate(t *testing.T) {
	app, _ := appCatalogo()

	t.Run("crea con 201 y sobre de exito", func(t *testing.T) {
		resp := postJSON(t, app, "/sedes/", `{"nombre":"Sede Central"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Result)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Sede Central", data["nombre"])
		assert.Equal(t, "sede-central", data["nombre_url"])
	})

	t.Run("nombre duplicado responde 409", func(t *testing.T) {
		resp := postJSON(t, app, "/sedes/", `{"nombre":"SEDE CENTRAL"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Result)
		assert.Equal(t, http.StatusConflict, env.Status)
	})

	t.Run("nombre faltante responde 400 sin escribir", func(t *testing.T) {
		app, repo := appCatalogo()
		resp := postJSON(t, app, "/sedes/", `{"nombre":"  "}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, repo.filas)
	})

	t.Run("body invalido responde 400", func(t *testing.T) {
		resp := postJSON(t, app, "/sedes/", `{nombre`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCatalogoHandlerGet(t *testing.T) {
	app, repo := appCatalogo()

	resp := postJSON(t, app, "/sedes/", `{"nombre":"Arequipa"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	resp.Body.Close()
	var creado map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &creado))
	id := creado["id"].(string)

	t.Run("GetByID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sedes/"+id, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("id desconocido responde 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sedes/no-existe", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("buscar por nombre", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sedes/buscar?nombre=Arequipa", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("update-estado solo cambia la bandera", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/sedes/update-estado/"+id, strings.NewReader(`{"estado":false}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		assert.False(t, repo.filas[id].Estado)
		assert.Equal(t, "Arequipa", repo.filas[id].Nombre)
	})

	t.Run("delete oculta la fila de los listados", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/sedes/"+id, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/sedes/"+id, nil)
		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, repo.filas, id) // soft delete conserva la fila
	})
}

func TestCatalogoHandlerPaginate(t *testing.T) {
	app, _ := appCatalogo()
	for _, nombre := range []string{"Lima", "Cusco", "Tacna"} {
		resp := postJSON(t, app, "/sedes/", `{"nombre":"`+nombre+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/sedes/paginate?page=1&limit=10", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Result     bool `json:"result"`
		Pagination struct {
			CurrentPage int   `json:"currentPage"`
			TotalItems  int64 `json:"totalItems"`
			TotalPages  int   `json:"totalPages"`
			NextPage    *int  `json:"nextPage"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Result)
	assert.Equal(t, 1, body.Pagination.CurrentPage)
	assert.Equal(t, int64(3), body.Pagination.TotalItems)
	assert.Equal(t, 1, body.Pagination.TotalPages)
	assert.Nil(t, body.Pagination.NextPage)
}
