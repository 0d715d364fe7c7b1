package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// EmpresaHandler maneja las peticiones HTTP de empresas, incluida la
// consulta al padrón SUNAT.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Rutas registra las rutas en el grupo dado.
func (h *EmpresaHandler) Rutas(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/paginate", h.GetPaginado)
	g.Get("/buscar", h.Buscar)
	g.Get("/sunat/:ruc", h.ConsultarRUC)
	g.Patch("/update-estado/:id", h.UpdateEstado)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *EmpresaHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context(), estadoQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *EmpresaHandler) GetPaginado(c *fiber.Ctx) error {
	out, pag, err := h.uc.GetPaginado(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, out, pag)
}

// Buscar busca por razón social exacta (?razon_social=).
func (h *EmpresaHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.GetByRazonSocial(c.Context(), c.Query("razon_social"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// ConsultarRUC devuelve la empresa local si ya existe; si no, consulta el
// padrón SUNAT (con cache) y registra la empresa encontrada.
func (h *EmpresaHandler) ConsultarRUC(c *fiber.Ctx) error {
	out, err := h.uc.ConsultarRUC(c.Context(), c.Params("ruc"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *EmpresaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.ActualizarEstado(c.Context(), c.Params("id"), in.Estado, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "estado actualizado")
}

func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
