package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
)

// DocumentoHandler maneja los adjuntos de descansos médicos (subida
// multipart y descarga).
type DocumentoHandler struct {
	uc *usecase.DocumentoUseCase
}

// NewDocumentoHandler construye el handler.
func NewDocumentoHandler(uc *usecase.DocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// Rutas registra las rutas en el grupo dado.
func (h *DocumentoHandler) Rutas(g fiber.Router) {
	g.Get("/descanso/:id", h.GetAllByDescanso)
	g.Get("/:id/descargar", h.Descargar)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// GetAllByDescanso lista los adjuntos de un descanso médico.
func (h *DocumentoHandler) GetAllByDescanso(c *fiber.Ctx) error {
	out, err := h.uc.GetAllByDescanso(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *DocumentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Descargar devuelve el contenido del archivo adjunto.
func (h *DocumentoHandler) Descargar(c *fiber.Ctx) error {
	meta, contenido, err := h.uc.Abrir(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if meta.TipoContenido != "" {
		c.Set(fiber.HeaderContentType, meta.TipoContenido)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, meta.NombreArchivo))
	return c.Status(fiber.StatusOK).Send(contenido)
}

// Create recibe el archivo multipart (campo "file") más los metadatos del
// formulario.
func (h *DocumentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return respondBadBody(c)
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("abrir archivo subido: %w", err))
	}
	defer f.Close()
	contenido, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, fmt.Errorf("leer archivo subido: %w", err))
	}

	archivo := usecase.ArchivoSubido{
		NombreArchivo: fh.Filename,
		TipoContenido: fh.Header.Get("Content-Type"),
		Contenido:     contenido,
	}
	out, err := h.uc.Crear(c.Context(), in, archivo, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *DocumentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *DocumentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "registro eliminado")
}
