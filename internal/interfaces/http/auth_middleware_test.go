package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsalazar/descansos-api/internal/domain/entity"
	apphttp "github.com/bsalazar/descansos-api/internal/interfaces/http"
	pkgjwt "github.com/bsalazar/descansos-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-solo-para-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testSessionID = "00000000-0000-0000-0000-0000000000aa"
	testIssuer    = "descansos-api-test"
	testExpMin    = 60
)

// fakeVerificador simula el repositorio de sesiones: un set de jti activos.
type fakeVerificador struct {
	activas map[string]bool
}

func (f *fakeVerificador) EstaActiva(_ context.Context, id string) (bool, error) {
	return f.activas[id], nil
}

func buildTestApp(verificador apphttp.VerificadorSesion, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, verificador)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"rol":        apphttp.GetRol(c),
			"session_id": apphttp.GetSessionID(c),
		})
	})
	app.Get("/protegida", handlers...)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSessionID, testUserID, rol, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("token valido con sesion activa deja los claims en locals", func(t *testing.T) {
		verificador := &fakeVerificador{activas: map[string]bool{testSessionID: true}}
		app := buildTestApp(verificador)

		resp := doRequest(t, app, tokenConRol(t, entity.RolAsistente))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, testUserID, body["user_id"])
		assert.Equal(t, entity.RolAsistente, body["rol"])
		assert.Equal(t, testSessionID, body["session_id"])
	})

	t.Run("sesion revocada rechaza el token aunque firme bien", func(t *testing.T) {
		verificador := &fakeVerificador{activas: map[string]bool{}}
		app := buildTestApp(verificador)

		resp := doRequest(t, app, tokenConRol(t, entity.RolAdmin))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("sin verificador el token valido pasa", func(t *testing.T) {
		app := buildTestApp(nil)
		resp := doRequest(t, app, tokenConRol(t, entity.RolConsulta))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("sin header Authorization", func(t *testing.T) {
		app := buildTestApp(nil)
		resp := doRequest(t, app, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token malformado", func(t *testing.T) {
		app := buildTestApp(nil)
		resp := doRequest(t, app, "Bearer token.invalido.aqui")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("firma con otro secret", func(t *testing.T) {
		tok, err := pkgjwt.Generate("otro-secret", testSessionID, testUserID, entity.RolAdmin, testIssuer, testExpMin)
		require.NoError(t, err)
		app := buildTestApp(nil)
		resp := doRequest(t, app, "Bearer "+tok)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("admin accede a ruta de admin", func(t *testing.T) {
		app := buildTestApp(nil, entity.RolAdmin)
		resp := doRequest(t, app, tokenConRol(t, entity.RolAdmin))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("asistente accede a ruta multi-rol", func(t *testing.T) {
		app := buildTestApp(nil, entity.RolAdmin, entity.RolAsistente)
		resp := doRequest(t, app, tokenConRol(t, entity.RolAsistente))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("consulta bloqueado en ruta de admin", func(t *testing.T) {
		app := buildTestApp(nil, entity.RolAdmin)
		resp := doRequest(t, app, tokenConRol(t, entity.RolConsulta))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("token sin rol", func(t *testing.T) {
		app := buildTestApp(nil, entity.RolAdmin)
		resp := doRequest(t, app, tokenConRol(t, ""))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
