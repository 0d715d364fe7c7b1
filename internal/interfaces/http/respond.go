package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/domain"
)

// respondData responde el sobre de éxito con datos.
func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.Envelope{Result: true, Data: data})
}

// respondList responde un listado paginado.
func respondList(c *fiber.Ctx, data any, p dto.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{Result: true, Data: data, Pagination: &p})
}

// respondMessage responde éxito sin datos (deletes, cambios de clave).
func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Envelope{Result: true, Message: message})
}

// respondError mapea los errores de dominio al código HTTP normalizado:
// 400 validación, 401/403 auth, 404 no encontrado, 409 duplicado, 500 el
// resto. Los 500 se registran; el detalle interno no sale al cliente.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrCorreoRegistrado):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSesionRevocada):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	}

	mensaje := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		mensaje = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.Envelope{Result: false, Error: mensaje, Status: status})
}

// respondBadBody responde 400 por un body que no parsea.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
		Result: false,
		Error:  "cuerpo inválido",
		Status: fiber.StatusBadRequest,
	})
}

// estadoQuery interpreta el query param ?estado= opcional de los listados.
func estadoQuery(c *fiber.Ctx) *bool {
	switch c.Query("estado") {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

// pageQuery arma el PageRequest desde los query params.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Filter: c.Query("filter"),
	}
}
