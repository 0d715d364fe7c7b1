package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// CatalogoHandler maneja las peticiones HTTP de una tabla de referencia.
// Una instancia por catálogo, cada una montada en su propio grupo.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Rutas registra las rutas del catálogo en el grupo dado.
func (h *CatalogoHandler) Rutas(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/paginate", h.GetPaginado)
	g.Get("/buscar", h.Buscar)
	g.Patch("/update-estado/:id", h.UpdateEstado)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *CatalogoHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), estadoQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CatalogoHandler) GetPaginado(c *fiber.Ctx) error {
	out, pag, err := h.uc.GetPaginado(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pag)
}

// Buscar busca una fila por nombre exacto (?nombre=).
func (h *CatalogoHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.GetByNombre(c.Context(), c.Query("nombre"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CatalogoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *CatalogoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CatalogoHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "estado actualizado")
}

func (h *CatalogoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
