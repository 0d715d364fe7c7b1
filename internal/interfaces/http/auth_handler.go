package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/auth"
	"github.com/bsalazar/descansos-api/internal/application/dto"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Rutas registra las rutas públicas de autenticación.
func (h *AuthHandler) Rutas(g fiber.Router) {
	g.Post("/login", h.Login)
	g.Post("/logout", h.Logout)
}

// Login emite un token Bearer con sesión revocable.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Logout revoca la sesión del token del header Authorization.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return unauthorized(c, "formato: Bearer <token>")
	}
	if err := h.uc.Logout(c.Context(), strings.TrimSpace(parts[1])); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "sesión cerrada")
}
