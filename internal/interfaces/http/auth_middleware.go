package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/dto"
	"github.com/bsalazar/descansos-api/pkg/jwt"
)

// Locals keys que el middleware deja en el contexto de Fiber.
const (
	LocalUserID    = "user_id"
	LocalRol       = "rol"
	LocalSessionID = "session_id"
)

// VerificadorSesion consulta si la sesión del token sigue vigente
// (implementado por postgres.SesionRepository). Puede ser nil en tests.
type VerificadorSesion interface {
	EstaActiva(ctx context.Context, id string) (bool, error)
}

func unauthorized(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
		Result: false,
		Error:  mensaje,
		Status: fiber.StatusUnauthorized,
	})
}

// AuthMiddleware valida el Bearer token, verifica que la sesión no esté
// revocada y deja user_id, rol y session_id en c.Locals.
func AuthMiddleware(jwtSecret string, sesiones VerificadorSesion) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "token vacío")
		}

		userID, rol, sessionID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "token inválido o expirado")
		}

		if sesiones != nil {
			activa, err := sesiones.EstaActiva(c.Context(), sessionID)
			if err != nil {
				return respondError(c, err)
			}
			if !activa {
				return unauthorized(c, "sesión revocada o expirada")
			}
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalRol, rol)
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados (después de AuthMiddleware).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return unauthorized(c, "token sin rol")
		}
		for _, r := range roles {
			if rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
			Result: false,
			Error:  "acceso denegado para el rol " + rol,
			Status: fiber.StatusForbidden,
		})
	}
}

// GetUserID devuelve el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRol devuelve el rol del usuario autenticado.
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}

// GetSessionID devuelve el id de sesión (jti) del token.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}
