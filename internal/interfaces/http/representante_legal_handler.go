package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// RepresentanteLegalHandler maneja las peticiones HTTP de representantes
// legales.
type RepresentanteLegalHandler struct {
	uc *usecase.RepresentanteLegalUseCase
}

// NewRepresentanteLegalHandler construye el handler.
func NewRepresentanteLegalHandler(uc *usecase.RepresentanteLegalUseCase) *RepresentanteLegalHandler {
	return &RepresentanteLegalHandler{uc: uc}
}

// Rutas registra las rutas en el grupo dado.
func (h *RepresentanteLegalHandler) Rutas(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/paginate", h.GetPaginado)
	g.Get("/empresa/:id", h.GetAllByEmpresa)
	g.Patch("/update-estado/:id", h.UpdateEstado)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *RepresentanteLegalHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *RepresentanteLegalHandler) GetPaginado(c *fiber.Ctx) error {
	out, pag, err := h.uc.GetPaginado(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pag)
}

// GetAllByEmpresa lista los representantes de una empresa.
func (h *RepresentanteLegalHandler) GetAllByEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.GetAllByEmpresa(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *RepresentanteLegalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *RepresentanteLegalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepresentanteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *RepresentanteLegalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRepresentanteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *RepresentanteLegalHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "estado actualizado")
}

func (h *RepresentanteLegalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
