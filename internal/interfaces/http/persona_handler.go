package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// PersonaHandler maneja las peticiones HTTP de personas.
type PersonaHandler struct {
	uc *usecase.PersonaUseCase
}

// NewPersonaHandler construye el handler.
func NewPersonaHandler(uc *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

// Rutas registra las rutas en el grupo dado.
func (h *PersonaHandler) Rutas(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/paginate", h.GetPaginado)
	g.Get("/buscar", h.Buscar)
	g.Patch("/update-estado/:id", h.UpdateEstado)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *PersonaHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), estadoQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PersonaHandler) GetPaginado(c *fiber.Ctx) error {
	out, pag, err := h.uc.GetPaginado(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pag)
}

// Buscar busca por número de documento exacto (?numero_documento=).
func (h *PersonaHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.GetByNumeroDocumento(c.Context(), c.Query("numero_documento"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PersonaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PersonaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *PersonaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PersonaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "estado actualizado")
}

func (h *PersonaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
