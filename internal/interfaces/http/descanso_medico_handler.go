package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// DescansoMedicoHandler maneja las peticiones HTTP de descansos médicos,
// incluida la constancia en PDF.
type DescansoMedicoHandler struct {
	uc *usecase.DescansoMedicoUseCase
}

// NewDescansoMedicoHandler construye el handler.
func NewDescansoMedicoHandler(uc *usecase.DescansoMedicoUseCase) *DescansoMedicoHandler {
	return &DescansoMedicoHandler{uc: uc}
}

// Rutas registra las rutas en el grupo dado.
func (h *DescansoMedicoHandler) Rutas(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/paginate", h.GetPaginado)
	g.Get("/persona/:id", h.GetAllByPersona)
	g.Patch("/update-estado/:id", h.UpdateEstado)
	g.Get("/:id/constancia", h.Constancia)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *DescansoMedicoHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), estadoQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *DescansoMedicoHandler) GetPaginado(c *fiber.Ctx) error {
	out, pag, err := h.uc.GetPaginado(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pag)
}

// GetAllByPersona lista el historial de descansos de una persona.
func (h *DescansoMedicoHandler) GetAllByPersona(c *fiber.Ctx) error {
	out, err := h.uc.GetAllByPersona(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// GetByID devuelve el detalle enriquecido (persona, empresa, diagnóstico,
// contingencia).
func (h *DescansoMedicoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Constancia devuelve el PDF de constancia del descanso.
func (h *DescansoMedicoHandler) Constancia(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Constancia(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="constancia-%s.pdf"`, id))
	return c.Status(fiber.StatusOK).Send(pdf)
}

func (h *DescansoMedicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDescansoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *DescansoMedicoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDescansoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *DescansoMedicoHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "estado actualizado")
}

func (h *DescansoMedicoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
