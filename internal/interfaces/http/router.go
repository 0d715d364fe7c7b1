package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bsalazar/descansos-api/internal/application/auth"
	"github.com/bsalazar/descansos-api/internal/application/usecase"
	"github.com/bsalazar/descansos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	// Catálogos (todos sobre el repositorio genérico).
	PaisUC             *usecase.CatalogoUseCase
	CargoUC            *usecase.CatalogoUseCase
	SedeUC             *usecase.CatalogoUseCase
	AreaUC             *usecase.CatalogoUseCase
	TipoDocumentoUC    *usecase.CatalogoUseCase
	TipoContingenciaUC *usecase.CatalogoUseCase

	PersonaUC       *usecase.PersonaUseCase
	EmpresaUC       *usecase.EmpresaUseCase
	RepresentanteUC *usecase.RepresentanteLegalUseCase
	TrabajadorUC    *usecase.TrabajadorSocialUseCase
	DiagnosticoUC   *usecase.DiagnosticoUseCase
	DescansoUC      *usecase.DescansoMedicoUseCase
	DocumentoUC     *usecase.DocumentoUseCase
	CanjeUC         *usecase.CanjeUseCase
	ReembolsoUC     *usecase.ReembolsoUseCase
	CobroUC         *usecase.CobroUseCase
	UsuarioUC       *usecase.UsuarioUseCase
	AuthUC          *auth.UseCase

	JWTSecret string
	Sesiones  VerificadorSesion
}

// Router registra las rutas de la API. Auth y health son públicos; el resto
// va detrás del middleware JWT, y la gestión de usuarios solo para admin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	NewAuthHandler(deps.AuthUC).Rutas(api.Group("/auth"))

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sesiones))

	// Catálogos
	NewCatalogoHandler(deps.PaisUC).Rutas(protected.Group("/paises"))
	NewCatalogoHandler(deps.CargoUC).Rutas(protected.Group("/cargos"))
	NewCatalogoHandler(deps.SedeUC).Rutas(protected.Group("/sedes"))
	NewCatalogoHandler(deps.AreaUC).Rutas(protected.Group("/areas"))
	NewCatalogoHandler(deps.TipoDocumentoUC).Rutas(protected.Group("/tipos-documento"))
	NewCatalogoHandler(deps.TipoContingenciaUC).Rutas(protected.Group("/tipos-contingencia"))

	// Agregados
	NewPersonaHandler(deps.PersonaUC).Rutas(protected.Group("/personas"))
	NewEmpresaHandler(deps.EmpresaUC).Rutas(protected.Group("/empresas"))
	NewRepresentanteLegalHandler(deps.RepresentanteUC).Rutas(protected.Group("/representantes-legales"))
	NewTrabajadorSocialHandler(deps.TrabajadorUC).Rutas(protected.Group("/trabajadores-sociales"))
	NewDiagnosticoHandler(deps.DiagnosticoUC).Rutas(protected.Group("/diagnosticos"))
	NewDescansoMedicoHandler(deps.DescansoUC).Rutas(protected.Group("/descansos-medicos"))
	NewDocumentoHandler(deps.DocumentoUC).Rutas(protected.Group("/documentos"))

	// Cadena de trámite
	NewCanjeHandler(deps.CanjeUC).Rutas(protected.Group("/canjes"))
	NewReembolsoHandler(deps.ReembolsoUC).Rutas(protected.Group("/reembolsos"))
	NewCobroHandler(deps.CobroUC).Rutas(protected.Group("/cobros"))

	// Gestión de usuarios: solo admin.
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	NewUsuarioHandler(deps.UsuarioUC).Rutas(usuarios)
}
