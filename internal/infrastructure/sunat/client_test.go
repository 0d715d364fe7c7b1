package sunat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsalazar/descansos-api/internal/domain"
)

func TestConsultarRUC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-prueba", r.Header.Get("Authorization"))
		switch r.URL.Query().Get("numero") {
		case "20100047218":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"numeroDocumento": "20100047218",
				"razonSocial": "BANCO DE CREDITO DEL PERU",
				"direccion": "AV. CENTENARIO NRO. 156",
				"distrito": "LA MOLINA",
				"provincia": "LIMA",
				"departamento": "LIMA",
				"estado": "ACTIVO",
				"condicion": "HABIDO"
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cli := NewClient(srv.URL, "token-prueba")

	t.Run("ruc existente", func(t *testing.T) {
		datos, err := cli.ConsultarRUC(context.Background(), "20100047218")
		require.NoError(t, err)
		assert.Equal(t, "20100047218", datos.RUC)
		assert.Equal(t, "BANCO DE CREDITO DEL PERU", datos.RazonSocial)
		assert.Equal(t, "ACTIVO", datos.EstadoSUNAT)
		assert.Equal(t, "HABIDO", datos.CondicionSUNAT)
	})

	t.Run("ruc inexistente", func(t *testing.T) {
		_, err := cli.ConsultarRUC(context.Background(), "20999999999")
		assert.ErrorIs(t, err, domain.ErrRUCNoEncontrado)
	})
}

func TestConsultarRUCRespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cli := NewClient(srv.URL, "")
	_, err := cli.ConsultarRUC(context.Background(), "20100047218")
	assert.ErrorIs(t, err, domain.ErrRUCNoEncontrado)
}
