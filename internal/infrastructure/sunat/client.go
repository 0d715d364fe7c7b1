// Package sunat implementa la consulta de RUC al padrón SUNAT vía el API
// público de apis.net.pe.
package sunat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bsalazar/descansos-api/internal/domain"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// Client consulta el padrón SUNAT. Requiere token de autenticación del API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient construye el cliente. baseURL sin slash final, ej.
// "https://api.apis.net.pe/v2/sunat".
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// respuestaRUC es el payload del API (campos en camelCase).
type respuestaRUC struct {
	Numero          string `json:"numeroDocumento"`
	RazonSocial     string `json:"razonSocial"`
	NombreComercial string `json:"nombreComercial"`
	Direccion       string `json:"direccion"`
	Distrito        string `json:"distrito"`
	Provincia       string `json:"provincia"`
	Departamento    string `json:"departamento"`
	Estado          string `json:"estado"`
	Condicion       string `json:"condicion"`
}

// ConsultarRUC busca el RUC en el padrón. Devuelve domain.ErrRUCNoEncontrado
// si el API responde 404.
func (c *Client) ConsultarRUC(ctx context.Context, ruc string) (*entity.DatosRUC, error) {
	url := fmt.Sprintf("%s/ruc?numero=%s", c.baseURL, ruc)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("sunat: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sunat: consultar RUC %s: %w", ruc, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrRUCNoEncontrado
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("sunat: consultar RUC %s: status %d", ruc, resp.StatusCode)
	}

	var body respuestaRUC
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("sunat: decodificar respuesta: %w", err)
	}
	if body.RazonSocial == "" {
		return nil, domain.ErrRUCNoEncontrado
	}

	return &entity.DatosRUC{
		RUC:             body.Numero,
		RazonSocial:     body.RazonSocial,
		NombreComercial: body.NombreComercial,
		Direccion:       body.Direccion,
		Distrito:        body.Distrito,
		Provincia:       body.Provincia,
		Departamento:    body.Departamento,
		EstadoSUNAT:     body.Estado,
		CondicionSUNAT:  body.Condicion,
	}, nil
}
